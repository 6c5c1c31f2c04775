package papi

import (
	"fmt"
	"reflect"
	"strings"
)

// MaxRuleDepth caps rule-tree nesting. PAPI itself rejects trees deeper
// than this, so reject locally before wasting a round trip.
const MaxRuleDepth = 10

// ChangeKind classifies a rule-tree difference.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeModified ChangeKind = "modified"
)

// ChangeTarget names the tree element a change applies to.
type ChangeTarget string

const (
	TargetRule      ChangeTarget = "rule"
	TargetBehavior  ChangeTarget = "behavior"
	TargetCriterion ChangeTarget = "criterion"
)

// Change is one structural difference between two rule trees.
type Change struct {
	Path   string       `json:"path"`   // slash-joined rule names, e.g. "default/Performance"
	Kind   ChangeKind   `json:"kind"`
	Target ChangeTarget `json:"target"`
	Name   string       `json:"name"`             // rule or behavior name
	Detail string       `json:"detail,omitempty"`
}

// DiffRules computes the structural differences between two rule trees.
// Child rules are matched by name; a renamed rule therefore shows up as a
// removal plus an addition, which matches how Property Manager's own
// version comparison presents it.
func DiffRules(a, b Rule) []Change {
	var changes []Change
	diffRule(a, b, a.Name, &changes)
	return changes
}

func diffRule(a, b Rule, path string, changes *[]Change) {
	if a.CriteriaMustSatisfy != b.CriteriaMustSatisfy {
		*changes = append(*changes, Change{
			Path:   path,
			Kind:   ChangeModified,
			Target: TargetRule,
			Name:   a.Name,
			Detail: fmt.Sprintf("criteriaMustSatisfy %q -> %q", a.CriteriaMustSatisfy, b.CriteriaMustSatisfy),
		})
	}

	diffBehaviorList(a.Criteria, b.Criteria, path, TargetCriterion, changes)
	diffBehaviorList(a.Behaviors, b.Behaviors, path, TargetBehavior, changes)

	matchedB := make(map[int]bool, len(b.Children))
	for _, childA := range a.Children {
		idx := findChild(b.Children, childA.Name, matchedB)
		if idx < 0 {
			*changes = append(*changes, Change{
				Path:   path,
				Kind:   ChangeRemoved,
				Target: TargetRule,
				Name:   childA.Name,
			})
			continue
		}
		matchedB[idx] = true
		diffRule(childA, b.Children[idx], path+"/"+childA.Name, changes)
	}
	for i, childB := range b.Children {
		if !matchedB[i] {
			*changes = append(*changes, Change{
				Path:   path,
				Kind:   ChangeAdded,
				Target: TargetRule,
				Name:   childB.Name,
			})
		}
	}
}

// diffBehaviorList compares two behavior (or criteria) lists, matching
// entries by name occurrence so duplicated behaviors pair up in order.
func diffBehaviorList(a, b []Behavior, path string, target ChangeTarget, changes *[]Change) {
	used := make(map[int]bool, len(b))
	for _, entryA := range a {
		idx := findBehavior(b, entryA.Name, used)
		if idx < 0 {
			*changes = append(*changes, Change{
				Path:   path,
				Kind:   ChangeRemoved,
				Target: target,
				Name:   entryA.Name,
			})
			continue
		}
		used[idx] = true
		if !reflect.DeepEqual(normalizeOptions(entryA.Options), normalizeOptions(b[idx].Options)) {
			*changes = append(*changes, Change{
				Path:   path,
				Kind:   ChangeModified,
				Target: target,
				Name:   entryA.Name,
				Detail: "options changed",
			})
		}
	}
	for i, entryB := range b {
		if !used[i] {
			*changes = append(*changes, Change{
				Path:   path,
				Kind:   ChangeAdded,
				Target: target,
				Name:   entryB.Name,
			})
		}
	}
}

func findChild(children []Rule, name string, taken map[int]bool) int {
	for i, c := range children {
		if !taken[i] && c.Name == name {
			return i
		}
	}
	return -1
}

func findBehavior(list []Behavior, name string, taken map[int]bool) int {
	for i, b := range list {
		if !taken[i] && b.Name == name {
			return i
		}
	}
	return -1
}

// normalizeOptions maps nil and empty option maps to the same value so a
// round-trip through JSON does not register as a modification.
func normalizeOptions(opts map[string]interface{}) map[string]interface{} {
	if len(opts) == 0 {
		return nil
	}
	return opts
}

// MergeRules overlays one rule tree onto another. Behaviors and criteria in
// the overlay replace same-named entries in the base (new ones append);
// children are matched by name and merged recursively, with overlay-only
// children appended. Comments and criteriaMustSatisfy take the overlay's
// value when set. The base is not mutated.
func MergeRules(base, overlay Rule) Rule {
	merged := Rule{
		Name:                base.Name,
		Comments:            base.Comments,
		CriteriaMustSatisfy: base.CriteriaMustSatisfy,
	}
	if overlay.Comments != "" {
		merged.Comments = overlay.Comments
	}
	if overlay.CriteriaMustSatisfy != "" {
		merged.CriteriaMustSatisfy = overlay.CriteriaMustSatisfy
	}

	merged.Criteria = mergeBehaviorList(base.Criteria, overlay.Criteria)
	merged.Behaviors = mergeBehaviorList(base.Behaviors, overlay.Behaviors)

	overlayUsed := make(map[int]bool, len(overlay.Children))
	for _, baseChild := range base.Children {
		idx := findChild(overlay.Children, baseChild.Name, overlayUsed)
		if idx < 0 {
			merged.Children = append(merged.Children, copyRule(baseChild))
			continue
		}
		overlayUsed[idx] = true
		merged.Children = append(merged.Children, MergeRules(baseChild, overlay.Children[idx]))
	}
	for i, overlayChild := range overlay.Children {
		if !overlayUsed[i] {
			merged.Children = append(merged.Children, copyRule(overlayChild))
		}
	}

	return merged
}

func mergeBehaviorList(base, overlay []Behavior) []Behavior {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	out := make([]Behavior, 0, len(base)+len(overlay))
	replaced := make(map[int]bool, len(overlay))

	for _, b := range base {
		merged := b
		for i, o := range overlay {
			if !replaced[i] && o.Name == b.Name {
				merged = copyBehavior(o)
				replaced[i] = true
				break
			}
		}
		out = append(out, copyBehavior(merged))
	}
	for i, o := range overlay {
		if !replaced[i] {
			out = append(out, copyBehavior(o))
		}
	}
	return out
}

func copyRule(r Rule) Rule {
	out := Rule{
		Name:                r.Name,
		Comments:            r.Comments,
		CriteriaMustSatisfy: r.CriteriaMustSatisfy,
	}
	for _, c := range r.Criteria {
		out.Criteria = append(out.Criteria, copyBehavior(c))
	}
	for _, b := range r.Behaviors {
		out.Behaviors = append(out.Behaviors, copyBehavior(b))
	}
	for _, child := range r.Children {
		out.Children = append(out.Children, copyRule(child))
	}
	return out
}

func copyBehavior(b Behavior) Behavior {
	out := Behavior{Name: b.Name}
	if b.Options != nil {
		out.Options = copyOptions(b.Options)
	}
	return out
}

func copyOptions(opts map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(opts))
	for k, v := range opts {
		if nested, ok := v.(map[string]interface{}); ok {
			out[k] = copyOptions(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// OptimizeRules removes empty child rules and duplicate behaviors, returning
// the cleaned tree and the number of elements removed. A rule is empty when
// it carries no behaviors, no criteria, and no surviving children; a
// behavior is a duplicate when an identical name+options entry already
// exists in the same rule. The default (root) rule is never removed.
func OptimizeRules(root Rule) (Rule, int) {
	removed := 0
	out := optimizeRule(root, &removed)
	return out, removed
}

func optimizeRule(r Rule, removed *int) Rule {
	out := Rule{
		Name:                r.Name,
		Comments:            r.Comments,
		CriteriaMustSatisfy: r.CriteriaMustSatisfy,
		Criteria:            r.Criteria,
	}

	out.Behaviors = dedupeBehaviors(r.Behaviors, removed)

	for _, child := range r.Children {
		optimized := optimizeRule(child, removed)
		if len(optimized.Behaviors) == 0 && len(optimized.Criteria) == 0 && len(optimized.Children) == 0 {
			*removed++
			continue
		}
		out.Children = append(out.Children, optimized)
	}

	return out
}

func dedupeBehaviors(list []Behavior, removed *int) []Behavior {
	if len(list) == 0 {
		return nil
	}
	out := make([]Behavior, 0, len(list))
	for _, b := range list {
		dup := false
		for _, kept := range out {
			if kept.Name == b.Name && reflect.DeepEqual(normalizeOptions(kept.Options), normalizeOptions(b.Options)) {
				dup = true
				break
			}
		}
		if dup {
			*removed++
			continue
		}
		out = append(out, b)
	}
	return out
}

// ValidateRuleTree performs local structural checks before a rule tree is
// sent to PAPI: root named "default" without criteria, non-empty rule and
// behavior names, valid criteriaMustSatisfy values, and a depth cap.
func ValidateRuleTree(root Rule) []string {
	var problems []string
	if root.Name != "default" {
		problems = append(problems, fmt.Sprintf("root rule must be named %q, got %q", "default", root.Name))
	}
	if len(root.Criteria) > 0 {
		problems = append(problems, "root rule must not have criteria")
	}
	validateRule(root, root.Name, 1, &problems)
	return problems
}

func validateRule(r Rule, path string, depth int, problems *[]string) {
	if depth > MaxRuleDepth {
		*problems = append(*problems, fmt.Sprintf("rule %q exceeds maximum depth of %d", path, MaxRuleDepth))
		return
	}
	if strings.TrimSpace(r.Name) == "" {
		*problems = append(*problems, fmt.Sprintf("rule at %q has an empty name", path))
	}
	switch r.CriteriaMustSatisfy {
	case "", "all", "any":
	default:
		*problems = append(*problems, fmt.Sprintf("rule %q has invalid criteriaMustSatisfy %q", path, r.CriteriaMustSatisfy))
	}
	for _, b := range r.Behaviors {
		if strings.TrimSpace(b.Name) == "" {
			*problems = append(*problems, fmt.Sprintf("rule %q has a behavior with an empty name", path))
		}
	}
	for _, c := range r.Criteria {
		if strings.TrimSpace(c.Name) == "" {
			*problems = append(*problems, fmt.Sprintf("rule %q has a criterion with an empty name", path))
		}
	}
	for _, child := range r.Children {
		validateRule(child, path+"/"+child.Name, depth+1, problems)
	}
}
