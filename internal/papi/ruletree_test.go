package papi

import (
	"testing"
)

func caching(ttl float64) Behavior {
	return Behavior{Name: "caching", Options: map[string]interface{}{"ttl": ttl}}
}

func defaultRule(children ...Rule) Rule {
	return Rule{
		Name:      "default",
		Behaviors: []Behavior{{Name: "origin", Options: map[string]interface{}{"hostname": "origin.example.com"}}},
		Children:  children,
	}
}

func TestDiffRulesIdentical(t *testing.T) {
	base := defaultRule(Rule{Name: "images", Behaviors: []Behavior{caching(3600)}})
	changes := DiffRules(base, base)
	if len(changes) != 0 {
		t.Errorf("expected no changes, got %v", changes)
	}
}

func TestDiffRulesBehaviorModified(t *testing.T) {
	left := defaultRule(Rule{Name: "images", Behaviors: []Behavior{caching(3600)}})
	right := defaultRule(Rule{Name: "images", Behaviors: []Behavior{caching(7200)}})

	changes := DiffRules(left, right)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d: %v", len(changes), changes)
	}
	change := changes[0]
	if change.Kind != ChangeModified || change.Target != TargetBehavior {
		t.Errorf("change = %+v, want modified behavior", change)
	}
	if change.Path != "default/images" || change.Name != "caching" {
		t.Errorf("change path/name = %q/%q", change.Path, change.Name)
	}
}

func TestDiffRulesChildAddedAndRemoved(t *testing.T) {
	left := defaultRule(Rule{Name: "images"})
	right := defaultRule(Rule{Name: "scripts"})

	changes := DiffRules(left, right)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d: %v", len(changes), changes)
	}

	kinds := map[ChangeKind]string{}
	for _, c := range changes {
		if c.Target != TargetRule {
			t.Errorf("unexpected target %q", c.Target)
		}
		kinds[c.Kind] = c.Name
	}
	if kinds[ChangeRemoved] != "images" {
		t.Errorf("removed = %q, want images", kinds[ChangeRemoved])
	}
	if kinds[ChangeAdded] != "scripts" {
		t.Errorf("added = %q, want scripts", kinds[ChangeAdded])
	}
}

func TestDiffRulesRepeatedBehaviorName(t *testing.T) {
	// Two behaviors with the same name are matched by occurrence order.
	left := defaultRule()
	left.Behaviors = append(left.Behaviors, caching(60), caching(120))
	right := defaultRule()
	right.Behaviors = append(right.Behaviors, caching(60), caching(300))

	changes := DiffRules(left, right)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d: %v", len(changes), changes)
	}
	if changes[0].Name != "caching" || changes[0].Kind != ChangeModified {
		t.Errorf("change = %+v", changes[0])
	}
}

func TestMergeRulesOverwritesMatchingBehavior(t *testing.T) {
	base := defaultRule(Rule{Name: "images", Behaviors: []Behavior{caching(3600)}})
	overlay := Rule{
		Name:     "default",
		Children: []Rule{{Name: "images", Behaviors: []Behavior{caching(60)}}},
	}

	merged := MergeRules(base, overlay)

	images := merged.Children[0]
	if got := images.Behaviors[0].Options["ttl"]; got != 60.0 {
		t.Errorf("merged ttl = %v, want 60", got)
	}
	// Base must stay untouched.
	if got := base.Children[0].Behaviors[0].Options["ttl"]; got != 3600.0 {
		t.Errorf("base mutated, ttl = %v", got)
	}
}

func TestMergeRulesAppendsNewChild(t *testing.T) {
	base := defaultRule(Rule{Name: "images"})
	overlay := Rule{
		Name:     "default",
		Children: []Rule{{Name: "scripts", Behaviors: []Behavior{caching(30)}}},
	}

	merged := MergeRules(base, overlay)
	if len(merged.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(merged.Children))
	}
	if merged.Children[1].Name != "scripts" {
		t.Errorf("appended child = %q, want scripts", merged.Children[1].Name)
	}
}

func TestMergeRulesKeepsBaseComments(t *testing.T) {
	base := defaultRule()
	base.Comments = "managed by terraform"
	overlay := Rule{Name: "default"}

	merged := MergeRules(base, overlay)
	if merged.Comments != "managed by terraform" {
		t.Errorf("comments = %q", merged.Comments)
	}

	overlay.Comments = "updated"
	merged = MergeRules(base, overlay)
	if merged.Comments != "updated" {
		t.Errorf("comments = %q, want overlay to win when set", merged.Comments)
	}
}

func TestOptimizeRulesRemovesEmptyChildren(t *testing.T) {
	base := defaultRule(
		Rule{Name: "empty"},
		Rule{Name: "images", Behaviors: []Behavior{caching(3600)}},
	)

	optimized, removed := OptimizeRules(base)
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if len(optimized.Children) != 1 || optimized.Children[0].Name != "images" {
		t.Errorf("children = %+v", optimized.Children)
	}
}

func TestOptimizeRulesDeduplicatesBehaviors(t *testing.T) {
	base := defaultRule()
	base.Behaviors = append(base.Behaviors, caching(60), caching(60))

	optimized, removed := OptimizeRules(base)
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	count := 0
	for _, b := range optimized.Behaviors {
		if b.Name == "caching" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("caching behaviors after optimize = %d, want 1", count)
	}
}

func TestOptimizeRulesKeepsDifferentOptions(t *testing.T) {
	base := defaultRule()
	base.Behaviors = append(base.Behaviors, caching(60), caching(120))

	_, removed := OptimizeRules(base)
	if removed != 0 {
		t.Errorf("removed = %d, want 0 for distinct options", removed)
	}
}

func TestOptimizeRulesNeverRemovesRoot(t *testing.T) {
	root := Rule{Name: "default"}
	optimized, removed := OptimizeRules(root)
	if removed != 0 || optimized.Name != "default" {
		t.Errorf("root rule must survive, got %+v removed=%d", optimized, removed)
	}
}

func TestValidateRuleTree(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		problems int
	}{
		{
			name:     "valid tree",
			rule:     defaultRule(Rule{Name: "images", CriteriaMustSatisfy: "all"}),
			problems: 0,
		},
		{
			name:     "root not named default",
			rule:     Rule{Name: "custom"},
			problems: 1,
		},
		{
			name: "root with criteria",
			rule: Rule{
				Name:     "default",
				Criteria: []Behavior{{Name: "path"}},
			},
			problems: 1,
		},
		{
			name:     "unnamed child",
			rule:     defaultRule(Rule{Name: ""}),
			problems: 1,
		},
		{
			name:     "invalid criteriaMustSatisfy",
			rule:     defaultRule(Rule{Name: "images", CriteriaMustSatisfy: "some"}),
			problems: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := ValidateRuleTree(tt.rule)
			if len(problems) != tt.problems {
				t.Errorf("problems = %v, want %d", problems, tt.problems)
			}
		})
	}
}

func TestValidateRuleTreeDepthLimit(t *testing.T) {
	leaf := Rule{Name: "leaf"}
	rule := leaf
	for i := 0; i < MaxRuleDepth+1; i++ {
		rule = Rule{Name: "nested", Children: []Rule{rule}}
	}
	rule.Name = "default"

	problems := ValidateRuleTree(rule)
	if len(problems) == 0 {
		t.Error("expected a depth problem for a tree past the nesting limit")
	}
}
