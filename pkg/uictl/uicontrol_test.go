package uictl_test

import (
	"testing"

	"github.com/alkime/itranscript/pkg/uictl"
	"github.com/stretchr/testify/assert"
)

func TestCapped(t *testing.T) {
	progress := 30
	dial := uictl.Capped[int](uictl.DialFunc[int](func() int { return progress }), 100)

	num, limit := dial.Cap()
	assert.Equal(t, 30, num)
	assert.Equal(t, 100, limit)

	progress = 70
	assert.Equal(t, 70, dial.Read())
}
