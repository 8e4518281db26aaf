package policy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const businessHours = `
days:
  sunday:    {open: "08:00", close: "21:00"}
  monday:    {open: "08:00", close: "21:00"}
  tuesday:   {open: "08:00", close: "21:00"}
  wednesday: {open: "08:00", close: "21:00"}
  thursday:  {open: "08:00", close: "21:00"}
  friday:    {open: "08:00", close: "13:00"}
  saturday:  {closed: true}
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "availability.yaml")
	require.NoError(t, os.WriteFile(path, []byte(businessHours), 0o600))

	rules, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, rules.Rules, 7)

	friday := rules.RuleFor(time.Friday)
	assert.Equal(t, 8*60, friday.OpenMinute)
	assert.Equal(t, 13*60, friday.CloseMinute)
	assert.False(t, rules.RuleFor(time.Saturday).IsOpen())
}

func TestParse_MissingDayIsClosed(t *testing.T) {
	rules, err := Parse([]byte(`
days:
  Monday: {open: "09:00", close: "17:30"}
`))
	require.NoError(t, err)

	assert.Equal(t, 17*60+30, rules.RuleFor(time.Monday).CloseMinute)
	assert.False(t, rules.RuleFor(time.Tuesday).IsOpen())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "broken yaml", content: "days: [", wantErr: ErrParse},
		{name: "empty", content: "days: {}", wantErr: ErrInvalidPolicy},
		{name: "unknown day", content: `days: {funday: {open: "08:00", close: "09:00"}}`, wantErr: ErrInvalidPolicy},
		{name: "bad time", content: `days: {monday: {open: "8am", close: "09:00"}}`, wantErr: ErrParse},
		{name: "open after close", content: `days: {monday: {open: "18:00", close: "09:00"}}`, wantErr: ErrInvalidPolicy},
		{name: "not aligned", content: `days: {monday: {open: "08:15", close: "09:00"}}`, wantErr: ErrInvalidPolicy},
		{name: "no hours", content: `days: {monday: {}}`, wantErr: ErrInvalidPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrReadFile)
}
