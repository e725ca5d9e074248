package formfmt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clientruntime/pkg/serialization"
	"github.com/goliatone/go-clientruntime/pkg/testsupport"
)

func TestParseNodeFactory_Object(t *testing.T) {
	body := "id=123&count=9&enabled=true&status=archived&tags=a&tags=b&score=2.5&other=x%20y"
	node, err := NewParseNodeFactory().RootParseNode(ContentType, strings.NewReader(body))
	if err != nil {
		t.Fatalf("RootParseNode: %v", err)
	}

	entity, err := serialization.Cast[*testsupport.Entity](node.ObjectValue(testsupport.NewEntity))
	if err != nil {
		t.Fatalf("ObjectValue: %v", err)
	}

	if *entity.ID != "123" || *entity.Count != 9 || !*entity.Enabled || *entity.Score != 2.5 {
		t.Fatalf("unexpected scalars: %+v", entity)
	}
	if *entity.Status != testsupport.Status(2) {
		t.Fatalf("expected archived status, got %v", *entity.Status)
	}
	if diff := cmp.Diff([]string{"a", "b"}, entity.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if got := entity.AdditionalData()["other"]; got != "x y" {
		t.Fatalf("additional other = %#v", got)
	}
}

func TestParseNodeFactory_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "bad escape", body: "a=%zz", want: "formfmt"},
		{name: "empty", body: "", want: "empty payload"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParseNodeFactory().RootParseNode(ContentType, strings.NewReader(tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
