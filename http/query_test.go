package http

import (
	"math"
	"testing"
)

func TestBuildPathWithParams(t *testing.T) {
	five := 5
	var none *int

	tests := []struct {
		name   string
		path   string
		params *Params
		want   string
	}{
		{
			name:   "no params",
			path:   "/api/annotations",
			params: NewParams(),
			want:   "/api/annotations",
		},
		{
			name:   "nil params",
			path:   "/api/annotations",
			params: nil,
			want:   "/api/annotations",
		},
		{
			name:   "insertion order",
			path:   "/api/create_annotation",
			params: NewParams().Set("project_id", 3).Set("file_id", 7).Set("xl", 1.5),
			want:   "/api/create_annotation?project_id=3&file_id=7&xl=1.5",
		},
		{
			name:   "reserved characters",
			path:   "/api/x",
			params: NewParams().Set("label", "a b&c/d=é"),
			want:   "/api/x?label=a%20b%26c%2Fd%3D%C3%A9",
		},
		{
			name: "empty-ish values",
			path: "/api/x",
			params: NewParams().
				Set("a", nil).
				Set("b", "").
				Set("c", false).
				Set("d", math.NaN()).
				Set("e", none),
			want: "/api/x?a=&b=&c=&d=&e=",
		},
		{
			name:   "zero is kept",
			path:   "/api/x",
			params: NewParams().Set("i", 0).Set("f", 0.0).Set("t", true),
			want:   "/api/x?i=0&f=0&t=true",
		},
		{
			name:   "arrays",
			path:   "/api/get_votes",
			params: NewParams().Set("project_id", 1).Set("file_ids", []int{4, 9}).Set("recalculate", true),
			want:   "/api/get_votes?project_id=1&file_ids[]=4&file_ids[]=9&recalculate=true",
		},
		{
			name:   "array elements",
			path:   "/api/x",
			params: NewParams().Set("k", []any{nil, "a b", false, 0}),
			want:   "/api/x?k[]=&k[]=a%20b&k[]=false&k[]=0",
		},
		{
			name:   "empty array is skipped",
			path:   "/api/x",
			params: NewParams().Set("a", []string{}).Set("b", 1),
			want:   "/api/x?b=1",
		},
		{
			name:   "nil slice",
			path:   "/api/get_votes",
			params: NewParams().Set("project_id", 1).Set("file_ids", []int(nil)).Set("recalculate", true),
			want:   "/api/get_votes?project_id=1&file_ids=&recalculate=true",
		},
		{
			name:   "nil map",
			path:   "/api/x",
			params: NewParams().Set("m", map[string]any(nil)).Set("s", []string(nil)),
			want:   "/api/x?m=&s=",
		},
		{
			name:   "objects are json encoded",
			path:   "/api/featurize",
			params: NewParams().Set("params", map[string]any{"w": 5}),
			want:   "/api/featurize?params=%7B%22w%22%3A5%7D",
		},
		{
			name:   "pointers",
			path:   "/api/x",
			params: NewParams().Set("p", &five),
			want:   "/api/x?p=5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPathWithParams(tt.path, tt.params); got != tt.want {
				t.Fatalf("BuildPathWithParams() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeURIComponent(t *testing.T) {
	if got, want := EncodeURIComponent("!'()*-._~ +?#[]"), "!'()*-._~%20%2B%3F%23%5B%5D"; got != want {
		t.Fatalf("EncodeURIComponent() = %q, want %q", got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		bits int
		want string
	}{
		{3, 64, "3"},
		{-0.5, 64, "-0.5"},
		{123456789.25, 64, "123456789.25"},
		{1e21, 64, "1e+21"},
		{1e-7, 64, "1e-7"},
		{float64(float32(0.1)), 32, "0.1"},
		{math.Inf(1), 64, "Infinity"},
		{math.Inf(-1), 64, "-Infinity"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in, tt.bits); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParams(t *testing.T) {
	p := NewParams().Set("b", 1).Set("a", []int{1, 2}).Set("b", "x")

	if got := p.Len(); got != 2 {
		t.Fatalf("Len() = %d", got)
	}
	if v, _ := p.Get("b"); v != "x" {
		t.Fatalf("Get(b) = %v", v)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"b":"x","a":[1,2]}`; got != want {
		t.Fatalf("MarshalJSON() = %s, want %s", got, want)
	}
}
