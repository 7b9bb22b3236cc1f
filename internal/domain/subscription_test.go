package domain

import "testing"

func TestSupportedCurrencies(t *testing.T) {
	want := []string{"czk", "eur", "usd"}
	got := SupportedCurrencies()
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
	for _, c := range got {
		if !IsSupportedCurrency(c) {
			t.Fatalf("%q listed but not accepted", c)
		}
	}
}

func TestIsSupportedCurrency_Rejects(t *testing.T) {
	for _, c := range []string{"", "gbp", "USD", "btc"} {
		if IsSupportedCurrency(c) {
			t.Fatalf("%q must not be accepted", c)
		}
	}
}
