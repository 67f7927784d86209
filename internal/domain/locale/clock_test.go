package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeSwahili(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"07:00", "Saa Moja kamili Asubuhi"},
		{"10:30", "Saa Nne na nusu Asubuhi"},
		{"10:15", "Saa Nne na robo Asubuhi"},
		{"10:45", "Saa Tano kasorobo Asubuhi"},
		{"10:10", "Saa Nne na dakika 10 Asubuhi"},
		{"10:50", "Saa Tano kasoro dakika 10 Asubuhi"},
		{"12:00", "Saa Sita kamili Mchana"},
		{"14:30", "Saa Nane na nusu Mchana"},
		{"16:00", "Saa Kumi kamili Jioni"},
		{"18:45", "Saa Moja kasorobo Jioni"},
		{"19:00", "Saa Moja kamili Usiku"},
		{"00:00", "Saa Sita kamili Usiku"},
		{"01:00", "Saa Saba kamili Usiku"},
		{"04:59", "Saa Kumi na Moja kasoro dakika 1 Usiku"},
		{"06:00", "Saa Kumi na Mbili kamili Asubuhi"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatTime(tt.in, Swahili)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTimeEnglish(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:05", "12:05 AM"},
		{"10:30", "10:30 AM"},
		{"12:00", "12:00 PM"},
		{"14:30", "2:30 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatTime(tt.in, English)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTimeInvalid(t *testing.T) {
	for _, in := range []string{"", "10", "24:00", "10:60", "-1:00", "ab:cd"} {
		t.Run(in, func(t *testing.T) {
			_, err := FormatTime(in, Swahili)
			assert.Error(t, err)
		})
	}
}

func TestPeriodOfBoundaries(t *testing.T) {
	assert.Equal(t, "Usiku", PeriodOf(4))
	assert.Equal(t, "Asubuhi", PeriodOf(5))
	assert.Equal(t, "Asubuhi", PeriodOf(11))
	assert.Equal(t, "Mchana", PeriodOf(12))
	assert.Equal(t, "Mchana", PeriodOf(15))
	assert.Equal(t, "Jioni", PeriodOf(16))
	assert.Equal(t, "Jioni", PeriodOf(18))
	assert.Equal(t, "Usiku", PeriodOf(19))
	assert.Equal(t, "Usiku", PeriodOf(23))
}
