package classify

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestClassifyWayleave(t *testing.T) {
	c := New(zerolog.Nop())

	tests := []struct {
		name string
		text string
		want WayleaveType
	}{
		{
			name: "annual by phrase count",
			text: "SCHEDULE OF PAYMENTS\nBack Pay due to the grantor\nThe Company shall pay to me/us during the existence of the works",
			want: WayleaveAnnual,
		},
		{
			name: "per annum payment overrides count",
			text: `the Term, the Wayleave Payment, 15 years of occupation, but paid at £ per annum`,
			want: WayleaveAnnual,
		},
		{
			name: "fifteen year by phrase count",
			text: "the Term means a term commencing on the date hereof and the Wayleave Payment covers 15 years",
			want: WayleaveFifteenYear,
		},
		{
			name: "term definition overrides empty count",
			text: `AGREED TERMS: "the Term" means the period described below`,
			want: WayleaveFifteenYear,
		},
		{
			name: "no indicators",
			text: "an unrelated conveyancing document",
			want: WayleaveUnknown,
		},
		{
			name: "empty text",
			text: "",
			want: WayleaveUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ClassifyWayleave(tt.text); got != tt.want {
				t.Errorf("ClassifyWayleave = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWayleaveTypeString(t *testing.T) {
	if WayleaveAnnual.String() != "annual" {
		t.Errorf("annual String = %q", WayleaveAnnual.String())
	}
	if WayleaveFifteenYear.String() != "15-year" {
		t.Errorf("15-year String = %q", WayleaveFifteenYear.String())
	}
	if WayleaveUnknown.String() != "unknown" {
		t.Errorf("unknown String = %q", WayleaveUnknown.String())
	}
}
