package deck

import "testing"

func TestNewCard_Valid(t *testing.T) {
	card, err := NewCard(Hearts, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Suit() != Hearts || card.Rank() != 7 {
		t.Fatalf("expected 7 of hearts, got %v", card)
	}
}

func TestNewCard_Invalid(t *testing.T) {
	if _, err := NewCard(4, 7); err == nil {
		t.Fatal("expected error for invalid suit")
	}
	if _, err := NewCard(Hearts, 1); err == nil {
		t.Fatal("expected error for rank below 2")
	}
	if _, err := NewCard(Hearts, 15); err == nil {
		t.Fatal("expected error for rank above ace")
	}
	if _, err := NewCard(Hearts, JokerRank); err == nil {
		t.Fatal("expected error for joker rank via NewCard")
	}
}

func TestCard_Ordering(t *testing.T) {
	seven, _ := NewCard(Hearts, 7)
	ten, _ := NewCard(Clubs, 10)
	sevenSpades, _ := NewCard(Spades, 7)

	if !seven.Less(ten) {
		t.Fatal("expected 7 < 10")
	}
	if ten.Less(seven) {
		t.Fatal("expected 10 not < 7")
	}
	if seven.Less(sevenSpades) || sevenSpades.Less(seven) {
		t.Fatal("suits must not break rank ties")
	}
	if !NewJoker().Less(seven) {
		t.Fatal("joker must order below every card")
	}
}

func TestCard_Joker(t *testing.T) {
	joker := NewJoker()
	if !joker.IsJoker() {
		t.Fatal("expected joker")
	}
	ace, _ := NewCard(Spades, Ace)
	if ace.IsJoker() {
		t.Fatal("ace of spades is not a joker")
	}
	if joker.ScanLabel() != "" {
		t.Fatalf("joker has no scan label, got %q", joker.ScanLabel())
	}
}

func TestCard_ScanLabel(t *testing.T) {
	cases := []struct {
		suit uint8
		rank uint8
		want string
	}{
		{Hearts, 4, "4H"},
		{Spades, Queen, "QS"},
		{Clubs, 10, "10C"},
		{Diamonds, Ace, "AD"},
	}
	for _, tc := range cases {
		card, err := NewCard(tc.suit, tc.rank)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := card.ScanLabel(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestCard_Label(t *testing.T) {
	queen, _ := NewCard(Hearts, Queen)
	if queen.Label() != "Queen of Hearts" {
		t.Fatalf("expected Queen of Hearts, got %q", queen.Label())
	}
	two, _ := NewCard(Clubs, 2)
	if two.Label() != "2 of Clubs" {
		t.Fatalf("expected 2 of Clubs, got %q", two.Label())
	}
	if NewJoker().Label() != "Joker" {
		t.Fatal("expected Joker label")
	}
}
