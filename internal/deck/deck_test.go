package deck

import "testing"

var pickerInfos = []Info{
	{Number: 1, Name: "سورة الفاتحة", EnglishName: "Al-Faatiha"},
	{Number: 2, Name: "سورة البقرة", EnglishName: "Al-Baqara"},
	{Number: 36, Name: "سورة يس", EnglishName: "Yaseen"},
	{Number: 112, Name: "سورة الإخلاص", EnglishName: "Al-Ikhlaas"},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{1, 2, 36, 112}},
		{"baqara", []int{2}},
		{"AL-", []int{1, 2, 112}},
		{"36", []int{36}},
		{"2:255", []int{2}},
		{"2:", []int{2}},
		{"112:abc", nil},
		{"nothing matches", nil},
	}

	for _, tt := range tests {
		got := Filter(pickerInfos, tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q) returned %d infos, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, in := range got {
			if in.Number != tt.want[i] {
				t.Errorf("Filter(%q)[%d] = deck %d, want %d", tt.query, i, in.Number, tt.want[i])
			}
		}
	}
}

func TestDeck_ItemLookup(t *testing.T) {
	d := &Deck{
		Number: 112,
		Items: []Item{
			{ID: "112:1", Number: 1},
			{ID: "112:2", Number: 2},
		},
	}

	if it := d.Item("112:2"); it == nil || it.Number != 2 {
		t.Errorf("Item(112:2) = %+v, want verse 2", it)
	}
	if it := d.Item("112:9"); it != nil {
		t.Errorf("Item(112:9) = %+v, want nil", it)
	}

	ids := d.ItemIDs()
	if len(ids) != 2 || ids[0] != "112:1" || ids[1] != "112:2" {
		t.Errorf("ItemIDs() = %v, want deck order", ids)
	}
}
