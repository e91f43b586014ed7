package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizeStringSlice(t *testing.T) {
	got := NormalizeStringSlice([]string{" Tesla ", "", "  ", "BMW"}, TrimAndNormalize)
	want := []string{"Tesla", "BMW"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeStringSlice = %v, want %v", got, want)
	}
}

func TestNormalizeStringSliceNil(t *testing.T) {
	if got := NormalizeStringSlice(nil, TrimAndNormalize); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
