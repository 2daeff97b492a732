package carteira

import (
	"errors"
	"strings"
	"testing"
)

type parseCase struct {
	input string
	ok    bool
}

// checkParse runs parse over tests, asserting validity and that rejections are
// validation errors.
func checkParse[T interface{ String() string }](t *testing.T, parse func(string) (T, error), tests []parseCase) {
	t.Helper()
	for _, tt := range tests {
		got, err := parse(tt.input)
		if tt.ok {
			if err != nil {
				t.Errorf("parse(%q) unexpected error: %v", tt.input, err)
				continue
			}
			if got.String() != tt.input {
				t.Errorf("parse(%q).String() = %q", tt.input, got.String())
			}
			continue
		}
		if err == nil {
			t.Errorf("parse(%q) = %q, want an error", tt.input, got.String())
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("parse(%q) error %v is not ErrInvalid", tt.input, err)
		}
	}
}

func TestParseCode(t *testing.T) {
	checkParse(t, ParseCode, []parseCase{
		{"00001", true},
		{"12345", true},
		{"1234", false},
		{"123456", false},
		{"1234a", false},
		{" 1234", false},
		{"", false},
	})
}

func TestParseTicker(t *testing.T) {
	checkParse(t, ParseTicker, []parseCase{
		{"PETR4       ", true},
		{"BOVA11      ", true},
		{"petr4       ", true},
		{"PETR4", false},
		{"PETR4        ", false},
		{"            ", false},
		{"PETR-4      ", false},
		{"", false},
	})
}

func TestParseCPF(t *testing.T) {
	checkParse(t, ParseCPF, []parseCase{
		{"529.982.247-25", true},
		{"111.444.777-35", true},
		{"529.982.247-24", false}, // wrong second check digit
		{"529.982.247-15", false}, // wrong first check digit
		{"111.111.111-11", false},
		{"000.000.000-00", false},
		{"52998224725", false},
		{"529.982.24725", false},
		{"529-982-247.25", false},
		{"529.982.247-2a", false},
		{"", false},
	})
}

func TestCheckDigit(t *testing.T) {
	if got := checkDigit([]int{5, 2, 9, 9, 8, 2, 2, 4, 7}); got != 2 {
		t.Errorf("first check digit = %d, want 2", got)
	}
	if got := checkDigit([]int{5, 2, 9, 9, 8, 2, 2, 4, 7, 2}); got != 5 {
		t.Errorf("second check digit = %d, want 5", got)
	}
}

func TestParseDate(t *testing.T) {
	checkParse(t, ParseDate, []parseCase{
		{"20240229", true},
		{"20000229", true},
		{"20231231", true},
		{"20230229", false},
		{"19000229", false},
		{"20230431", false},
		{"20231301", false},
		{"20230100", false},
		{"2023-12-31", false},
		{"2023123", false},
		{"", false},
	})
	if d := MustDate("20240229").Day(); d.Year() != 2024 || d.Month() != 2 || d.Day() != 29 {
		t.Errorf("Day() = %v", d)
	}
}

func TestParseName(t *testing.T) {
	checkParse(t, ParseName, []parseCase{
		{"Ana", true},
		{"Ana Maria", true},
		{"João", true},
		{"Carteira 2", true},
		{strings.Repeat("a", 20), true},
		{strings.Repeat("ã", 20), true},
		{strings.Repeat("a", 21), false},
		{"Ana  Maria", false},
		{"Ana-Maria", false},
		{"", false},
		{"\xff", false},
	})
}

func TestParseProfile(t *testing.T) {
	checkParse(t, ParseProfile, []parseCase{
		{"Conservador", true},
		{"Moderado", true},
		{"Agressivo", true},
		{"moderado", false},
		{"Arrojado", false},
		{"", false},
	})
}

func TestParseMoney(t *testing.T) {
	checkParse(t, ParseMoney, []parseCase{
		{"0,01", true},
		{"1,00", true},
		{"1.234,56", true},
		{"999.999,99", true},
		{"100.000.000,00", true},
		{"100.000.000,01", false},
		{"1.000.000.000,00", false},
		{"0,00", false},
		{"1234,56", false},
		{"1.23,45", false},
		{"12,5", false},
		{"12,500", false},
		{"12.50", false},
		{",50", false},
		{"-1,00", false},
		{"00,01", false},
		{"000,01", false},
		{"01,00", false},
		{"0.001,00", false},
		{"01.000,00", false},
		{"0,50", true},
		{"10,00", true},
		{"", false},
	})
}

func TestParseQuantity(t *testing.T) {
	checkParse(t, ParseQuantity, []parseCase{
		{"1", true},
		{"100", true},
		{"1000", true},
		{"1.000", true},
		{"1.000.000", true},
		{"1000000", true},
		{"1000001", false},
		{"1.000.001", false},
		{"0", false},
		{"000", false},
		{"0001", false},
		{"0.001", false},
		{"01.000", false},
		{"10", true},
		{"10.000", true},
		{"1000.000", false},
		{"1.00", false},
		{"1,5", false},
		{"-1", false},
		{"99999999999999999999999", false},
		{"", false},
	})
	tests := map[string]int64{"1": 1, "1.000": 1000, "250": 250, "1.000.000": 1_000_000}
	for raw, want := range tests {
		if got := MustQuantity(raw).Int(); got != want {
			t.Errorf("MustQuantity(%q).Int() = %d, want %d", raw, got, want)
		}
	}
}

func TestParsePassword(t *testing.T) {
	checkParse(t, ParsePassword, []parseCase{
		{"Ab1#cd", true},
		{"Z9$y%x", true},
		{"Ab1#cc", false}, // repeated character
		{"Ab1@cd", false}, // symbol not allowed
		{"ab1#cd", false}, // no upper case
		{"AB1#CD", false}, // no lower case
		{"Abx#cd", false}, // no digit
		{"Ab12cd", false}, // no symbol
		{"Ab1#c", false},
		{"Ab1#cde", false},
		{"", false},
	})

	_, err := ParsePassword("Ab1@cd")
	if err == nil || strings.Contains(err.Error(), "Ab1@cd") {
		t.Errorf("password errors must not echo the input: %v", err)
	}
}

func TestSetKeepsValueOnError(t *testing.T) {
	c := MustCode("00001")
	if err := c.Set("bad"); err == nil {
		t.Fatal("Set(bad) succeeded")
	}
	if c.String() != "00001" {
		t.Errorf("failed Set changed the code to %q", c)
	}

	var m Money
	if err := m.Set("1,00"); err != nil {
		t.Fatal(err)
	}
	if err := m.Set("1,0"); err == nil {
		t.Fatal("Set(1,0) succeeded")
	}
	if m.String() != "1,00" {
		t.Errorf("failed Set changed the amount to %q", m)
	}
}

func TestValidationError(t *testing.T) {
	_, err := ParseCode("12")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %T is not a *ValidationError", err)
	}
	if verr.Type != "code" || verr.Value != "12" {
		t.Errorf("unexpected %+v", verr)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("a validation error must only match ErrInvalid")
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCPF did not panic")
		}
	}()
	MustCPF("111.111.111-11")
}
