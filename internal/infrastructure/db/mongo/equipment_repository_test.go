package mongo

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchClause_EscapesMetacharacters(t *testing.T) {
	clause := searchClause("CNV-001 (spare)*")

	if len(clause) != 2 {
		t.Fatalf("expected name and serial_number branches, got %d", len(clause))
	}
	for _, branch := range clause {
		fields := branch.(bson.M)
		for _, v := range fields {
			pattern := v.(bson.M)["$regex"].(string)
			if strings.Contains(pattern, "(spare)*") {
				t.Fatalf("metacharacters not escaped: %q", pattern)
			}
			if !strings.Contains(pattern, `\(spare\)\*`) {
				t.Fatalf("expected literal-escaped term, got %q", pattern)
			}
			if v.(bson.M)["$options"] != "i" {
				t.Fatalf("search must stay case-insensitive")
			}
		}
	}
}

func TestSearchClause_PlainTermUnchanged(t *testing.T) {
	clause := searchClause("conveyor")

	pattern := clause[0].(bson.M)["name"].(bson.M)["$regex"].(string)
	if pattern != "conveyor" {
		t.Fatalf("plain term must pass through unchanged, got %q", pattern)
	}
}
