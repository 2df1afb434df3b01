package problem

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Given an array nums.", "Given an array nums."},
		{"comparison is not markup", "1 <= n < 10^4 and a<b", "1 <= n < 10^4 and a<b"},
		{"index comparison is not markup", "Find i<j such that a[i]>a[j] holds.", "Find i<j such that a[i]>a[j] holds."},
		{"generic type is not markup", "Return a List<Integer> of indices.", "Return a List<Integer> of indices."},
		{"inline tags", "<p>Given <code>nums</code>.</p>", "Given nums."},
		{"superscript", "<p>1 &lt;= n &lt;= 10<sup>4</sup></p>", "1 <= n <= 104"},
		{"entities", "<p>a &lt; b</p>", "a < b"},
		{"list items", "<ul><li>one</li><li>two</li></ul>", "• one\n• two"},
		{"blank lines collapse", "<p>a</p><p></p><p></p><p>b</p>", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.input); got != tt.want {
				t.Errorf("PlainText(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}
