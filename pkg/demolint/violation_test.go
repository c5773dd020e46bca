package demolint_test

import (
	"reflect"
	"testing"

	"github.com/qdocs/demolint/pkg/demolint"
)

func TestSortViolations_ByRecordThenField(t *testing.T) {
	violations := []demolint.Violation{
		{Record: "b_demo", Field: "title"},
		{Record: "a_demo", Field: "title"},
		{Record: "a_demo", Field: "authors"},
	}

	demolint.SortViolations(violations)

	want := []demolint.Violation{
		{Record: "a_demo", Field: "authors"},
		{Record: "a_demo", Field: "title"},
		{Record: "b_demo", Field: "title"},
	}
	if !reflect.DeepEqual(violations, want) {
		t.Errorf("SortViolations order = %v, want %v", violations, want)
	}
}

func TestSortViolations_StableForTies(t *testing.T) {
	violations := []demolint.Violation{
		{Record: "a", Field: "refs", Message: "first"},
		{Record: "a", Field: "refs", Message: "second"},
	}

	demolint.SortViolations(violations)

	if violations[0].Message != "first" || violations[1].Message != "second" {
		t.Errorf("Expected discovery order preserved for ties, got %v", violations)
	}
}

func TestViolation_String(t *testing.T) {
	tests := []struct {
		name string
		v    demolint.Violation
		want string
	}{
		{
			"with field",
			demolint.Violation{Record: "demo", Field: "title", Kind: demolint.KindMissingField, Message: "required field is missing"},
			"demo: title: MissingField: required field is missing",
		},
		{
			"without field",
			demolint.Violation{Record: "./broken.json", Kind: demolint.KindWrongType, Message: "not JSON"},
			"./broken.json: WrongType: not JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountByKind(t *testing.T) {
	violations := []demolint.Violation{
		{Kind: demolint.KindMissingField},
		{Kind: demolint.KindMissingField},
		{Kind: demolint.KindDuplicateKey},
	}

	counts := demolint.CountByKind(violations)
	if counts[demolint.KindMissingField] != 2 {
		t.Errorf("Expected 2 MissingField, got %d", counts[demolint.KindMissingField])
	}
	if counts[demolint.KindDuplicateKey] != 1 {
		t.Errorf("Expected 1 DuplicateKey, got %d", counts[demolint.KindDuplicateKey])
	}
	if len(counts) != 2 {
		t.Errorf("Expected 2 kinds, got %d", len(counts))
	}
}

func TestStringSet(t *testing.T) {
	set := demolint.NewStringSet("a", "b")
	if !set.Contains("a") || !set.Contains("b") {
		t.Error("Expected members to be found")
	}
	if set.Contains("c") {
		t.Error("Expected non-member to be absent")
	}

	var nilSet demolint.StringSet
	if nilSet.Contains("a") {
		t.Error("Expected nil set to contain nothing")
	}
}

func TestRules_SEOMaxLength(t *testing.T) {
	if got := (demolint.Rules{}).SEOMaxLength(); got != demolint.DefaultSEODescriptionMaxLength {
		t.Errorf("Expected default bound %d, got %d", demolint.DefaultSEODescriptionMaxLength, got)
	}
	if got := (demolint.Rules{SEODescriptionMaxLength: 80}).SEOMaxLength(); got != 80 {
		t.Errorf("Expected 80, got %d", got)
	}
}
