package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/labelkit/labelkit/internal/label"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewService(t *testing.T) {
	s := NewService(nil)
	require.NotNil(t, s)
	assert.NotNil(t, s.logger, "nil logger falls back to the default")

	logger := testLogger()
	s = NewService(logger)
	assert.Equal(t, logger, s.logger)
}

func TestOrdersXLSX(t *testing.T) {
	records := []label.OrderRecord{
		{
			Name:     "Asha Rao",
			Phone:    "9876543210",
			Address1: "12 MG Road",
			Address2: "Near Metro",
			City:     "Bengaluru",
			State:    "Karnataka",
			Pincode:  "560001",
			Size:     "XL",
			Total:    "Rs.499.00",
			Mode:     "COD",
		},
		{
			Name:     "Manish Sharma",
			Phone:    "9812345678",
			Address1: "H No 12, Shiv Colony",
			Address2: "None",
			City:     "Rohtak",
			State:    "Haryana",
			Pincode:  "124001",
			Size:     "M",
			Total:    "Rs.299.00",
			Mode:     "PREPAID",
		},
	}

	s := NewService(testLogger())
	data, err := s.OrdersXLSX(records)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// The bytes must round-trip as a readable workbook
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")

	assert.Equal(t, []string{
		"Index", "Name", "Phone", "Address1", "Address2",
		"City", "State", "Pincode", "Size", "Total", "Mode",
	}, rows[0])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Asha Rao", rows[1][1])
	assert.Equal(t, "9876543210", rows[1][2])
	assert.Equal(t, "Rs.499.00", rows[1][9])
	assert.Equal(t, "COD", rows[1][10])

	assert.Equal(t, "Manish Sharma", rows[2][1])
	assert.Equal(t, "PREPAID", rows[2][10])
}

func TestOrdersXLSXEmpty(t *testing.T) {
	s := NewService(testLogger())

	data, err := s.OrdersXLSX(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data, "an empty record list still yields a workbook with headers")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Index", rows[0][0])
}
