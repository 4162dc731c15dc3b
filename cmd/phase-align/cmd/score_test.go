package cmd

import (
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestSubCostVector(t *testing.T) {
	costs, err := subCostVector(3, "", 7)
	assert.NoError(t, err)
	expect.EQ(t, costs, []int64{7, 7, 7})

	costs, err = subCostVector(0, "", 7)
	assert.NoError(t, err)
	expect.EQ(t, len(costs), 0)

	costs, err = subCostVector(4, "30, 40,20,5", 1)
	assert.NoError(t, err)
	expect.EQ(t, costs, []int64{30, 40, 20, 5})

	_, err = subCostVector(3, "30,40", 1)
	expect.NotNil(t, err)
	assert.HasSubstr(t, err.Error(), "3-symbol query")

	_, err = subCostVector(2, "30,x", 1)
	expect.NotNil(t, err)
	assert.HasSubstr(t, err.Error(), "substitution cost")
}
