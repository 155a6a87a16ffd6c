package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDateJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-01-05"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.January || d.Day() != 5 {
		t.Fatalf("unexpected date %v", d.Time)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-01-05"` {
		t.Fatalf("got %s", out)
	}
}

func TestDateRejectsBadInput(t *testing.T) {
	for _, in := range []string{`"05/01/2024"`, `20240105`, `"2024-13-01"`, `""`} {
		var d Date
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}

func TestTransactionAmountIsNumber(t *testing.T) {
	tx := Transaction{
		ID:          1,
		BudgetID:    1,
		Amount:      decimal.RequireFromString("120.5"),
		Description: "groceries",
		Date:        NewDate(2024, time.January, 5),
	}
	out, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"budget_id":1,"amount":120.5,"description":"groceries","date":"2024-01-05"}`
	if string(out) != want {
		t.Fatalf("got %s\nwant %s", out, want)
	}
}

func TestUserHidesPasswordHash(t *testing.T) {
	u := User{ID: 1, Name: "A", Email: "a@x.com", PasswordHash: []byte("secret")}
	out, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["password"]; ok {
		t.Fatal("password leaked")
	}
	if _, ok := m["PasswordHash"]; ok {
		t.Fatal("password hash leaked")
	}
}
