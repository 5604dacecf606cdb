package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"gqlug/internal/filter"
)

func TestNewAudit_StampsCreatorAndTimes(t *testing.T) {
	actor := uuid.New()
	audit := NewAudit(actor)

	if audit.CreatedBy == nil || *audit.CreatedBy != actor {
		t.Fatalf("createdby not stamped: %#v", audit.CreatedBy)
	}
	if audit.ChangedBy == nil || *audit.ChangedBy != actor {
		t.Fatalf("changedby not stamped: %#v", audit.ChangedBy)
	}
	if audit.Created.After(audit.LastChange) {
		t.Fatalf("created %v must not be after lastchange %v", audit.Created, audit.LastChange)
	}
}

func TestTouch_MovesLastChangeTogetherWithChangedBy(t *testing.T) {
	creator := uuid.New()
	editor := uuid.New()

	audit := NewAudit(creator)
	created := audit.Created
	before := audit.LastChange

	time.Sleep(time.Millisecond)
	audit.Touch(editor)

	if !audit.Created.Equal(created) {
		t.Fatal("created must not move on mutation")
	}
	if audit.CreatedBy == nil || *audit.CreatedBy != creator {
		t.Fatal("createdby must not move on mutation")
	}
	if audit.ChangedBy == nil || *audit.ChangedBy != editor {
		t.Fatalf("changedby should follow the acting user, got %#v", audit.ChangedBy)
	}
	if !audit.LastChange.After(before) {
		t.Fatal("lastchange should advance on mutation")
	}
	if audit.Created.After(audit.LastChange) {
		t.Fatal("created <= lastchange must hold after mutation")
	}
}

func TestFilterDescriptors_DeclareExpectedAttributes(t *testing.T) {
	descriptors := []struct {
		entity string
		attrs  []string
		get    func() map[string]bool
	}{
		{"User", []string{"name", "surname", "email", "valid"}, func() map[string]bool {
			return attrNames(UserFilterDescriptor().Attributes)
		}},
		{"Group", []string{"name", "name_en", "valid", "grouptype_id", "mastergroup_id"}, func() map[string]bool {
			return attrNames(GroupFilterDescriptor().Attributes)
		}},
		{"GroupType", []string{"name", "name_en", "valid"}, func() map[string]bool {
			return attrNames(GroupTypeFilterDescriptor().Attributes)
		}},
		{"Membership", []string{"user_id", "group_id", "valid", "startdate", "enddate"}, func() map[string]bool {
			return attrNames(MembershipFilterDescriptor().Attributes)
		}},
	}

	audit := []string{"id", "created", "lastchange", "createdby", "changedby"}
	for _, d := range descriptors {
		declared := d.get()
		for _, attr := range append(append([]string{}, d.attrs...), audit...) {
			if !declared[attr] {
				t.Errorf("%s descriptor is missing attribute %q", d.entity, attr)
			}
		}
	}
}

func attrNames(attrs map[string]filter.Attribute) map[string]bool {
	names := make(map[string]bool, len(attrs))
	for name := range attrs {
		names[name] = true
	}
	return names
}
