package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type target struct {
	name  string
	count int
}

func TestApplyAll(t *testing.T) {
	tgt := &target{}
	ApplyAll(tgt,
		WrapperOptions[target](func(t *target) { t.name = "a" }),
		nil,
		WrapperOptions[target](func(t *target) { t.count++ }),
		WrapperOptions[target](func(t *target) { t.count++ }),
	)

	assert.Equal(t, "a", tgt.name)
	assert.Equal(t, 2, tgt.count)
}
