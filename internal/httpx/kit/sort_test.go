package kit

import (
	"testing"

	"visitor-iq/ent"
)

func TestApplyLeadSort_ValidateField(t *testing.T) {
	c := ent.NewClient()
	q := c.IdentityLink.Query()
	if _, err := ApplyLeadSort(q, "engagement_score:desc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ApplyLeadSort(q, "unknown:asc"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, err := ApplyLeadSort(q, "engagement_score:sideways"); err == nil {
		t.Fatalf("expected error for bad direction")
	}
}
