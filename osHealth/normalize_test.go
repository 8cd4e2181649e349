package osHealth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToGB(t *testing.T) {
	assert.Equal(t, 8.0, BytesToGB(8*1024*1024*1024))
	assert.Equal(t, 0.0, BytesToGB(0))
	assert.Equal(t, 1.5, BytesToGB(1536*1024*1024))
	// 1 GB + 5 MB rounds to 1 GB
	assert.Equal(t, 1.0, BytesToGB(1024*1024*1024+5*1024*1024))
}

func TestPageArithmetic(t *testing.T) {
	var pageSize uint64 = 4096
	var pages uint64 = 262144

	assert.Equal(t, uint64(1073741824), pages*pageSize)
	assert.Equal(t, 1.0, BytesToGB(pages*pageSize))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, Percent(1, 2))
	assert.Equal(t, 33.33, Percent(1, 3))
	assert.Equal(t, 66.67, Percent(2, 3))
	assert.Equal(t, 0.0, Percent(5, 0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, Round2(12.345000001))
	assert.Equal(t, 12.34, Round2(12.344))
	assert.Equal(t, 100.0, Round2(99.999))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "95", FormatValue(95))
	assert.Equal(t, "0.5", FormatValue(0.5))
	assert.Equal(t, "88.25", FormatValue(88.25))
}
