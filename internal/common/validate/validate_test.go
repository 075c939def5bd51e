// Released under an MIT license. See LICENSE.

package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/type/num"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
)

func TestFixed(t *testing.T) {
	args := []value.I{num.New(1), num.New(2)}

	require.NoError(t, Fixed(args, 2))
	require.NoError(t, Fixed(nil, 0))

	require.Equal(t, fault.BadArgumentCount{Expected: 3, Actual: 2}, Fixed(args, 3))
	require.Equal(t, fault.BadArgumentCount{Expected: 0, Actual: 2}, Fixed(args, 0))
}
