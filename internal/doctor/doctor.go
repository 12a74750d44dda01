// Package doctor audits a config tree for problems the core model
// deliberately permits: empty keys and duplicate sibling keys. The model
// never rejects these (they are the editing surface's job to flag), so the
// audit is report-only.
package doctor

import (
	"fmt"
	"strings"

	"leaderkey-cli/internal/model"
)

type IssueKind string

const (
	IssueEmptyKey     IssueKind = "empty-key"
	IssueDuplicateKey IssueKind = "duplicate-key"
	IssueEmptyValue   IssueKind = "empty-value"
)

type Issue struct {
	Kind    IssueKind `json:"kind"`
	Path    string    `json:"path"`
	Message string    `json:"message"`
}

// Check walks the whole tree and reports issues in display order.
func Check(root *model.Group) []Issue {
	var out []Issue
	checkGroup(root, "", &out)
	return out
}

func checkGroup(g *model.Group, path string, out *[]Issue) {
	seen := map[string][]string{}
	var keyOrder []string

	for _, e := range g.Actions {
		key := ""
		name := e.DisplayName()
		switch {
		case e.Action != nil:
			key = e.Action.Key
			if strings.TrimSpace(e.Action.Value) == "" {
				*out = append(*out, Issue{
					Kind:    IssueEmptyValue,
					Path:    path,
					Message: fmt.Sprintf("action %q has no value set", name),
				})
			}
		case e.Group != nil:
			key = e.Group.Key
		}

		if strings.TrimSpace(key) == "" {
			*out = append(*out, Issue{
				Kind:    IssueEmptyKey,
				Path:    path,
				Message: fmt.Sprintf("entry %q has no key and cannot be triggered", name),
			})
		} else {
			if _, ok := seen[key]; !ok {
				keyOrder = append(keyOrder, key)
			}
			seen[key] = append(seen[key], name)
		}

		if e.Group != nil {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			checkGroup(e.Group, childPath, out)
		}
	}

	for _, key := range keyOrder {
		names := seen[key]
		if len(names) < 2 {
			continue
		}
		*out = append(*out, Issue{
			Kind:    IssueDuplicateKey,
			Path:    path,
			Message: fmt.Sprintf("key %q is bound %d times (%s); only the first can be reached", key, len(names), strings.Join(names, ", ")),
		})
	}
}
