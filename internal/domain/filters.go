package domain

import "gqlug/internal/filter"

// Filter descriptors declare which attributes each entity exposes to the where
// argument and the columns they translate to. Everything else is rejected
// before any SQL is built.

func auditAttributes() map[string]filter.Attribute {
	return map[string]filter.Attribute{
		"id":         {Column: "id", Type: filter.TypeUUID},
		"created":    {Column: "created", Type: filter.TypeTimestamp},
		"lastchange": {Column: "lastchange", Type: filter.TypeTimestamp},
		"createdby":  {Column: "createdby", Type: filter.TypeUUID},
		"changedby":  {Column: "changedby", Type: filter.TypeUUID},
	}
}

func withAudit(attrs map[string]filter.Attribute) map[string]filter.Attribute {
	merged := auditAttributes()
	for name, attr := range attrs {
		merged[name] = attr
	}
	return merged
}

// UserFilterDescriptor declares the filterable surface of User.
func UserFilterDescriptor() filter.Descriptor {
	return filter.Descriptor{
		Entity: "User",
		Attributes: withAudit(map[string]filter.Attribute{
			"name":    {Column: "name", Type: filter.TypeString},
			"surname": {Column: "surname", Type: filter.TypeString},
			"email":   {Column: "email", Type: filter.TypeString},
			"valid":   {Column: "valid", Type: filter.TypeBool},
		}),
	}
}

// GroupFilterDescriptor declares the filterable surface of Group.
func GroupFilterDescriptor() filter.Descriptor {
	return filter.Descriptor{
		Entity: "Group",
		Attributes: withAudit(map[string]filter.Attribute{
			"name":          {Column: "name", Type: filter.TypeString},
			"name_en":       {Column: "name_en", Type: filter.TypeString},
			"valid":         {Column: "valid", Type: filter.TypeBool},
			"grouptype_id":  {Column: "grouptype_id", Type: filter.TypeUUID},
			"mastergroup_id": {Column: "mastergroup_id", Type: filter.TypeUUID},
		}),
	}
}

// GroupTypeFilterDescriptor declares the filterable surface of GroupType.
func GroupTypeFilterDescriptor() filter.Descriptor {
	return filter.Descriptor{
		Entity: "GroupType",
		Attributes: withAudit(map[string]filter.Attribute{
			"name":    {Column: "name", Type: filter.TypeString},
			"name_en": {Column: "name_en", Type: filter.TypeString},
			"valid":   {Column: "valid", Type: filter.TypeBool},
		}),
	}
}

// MembershipFilterDescriptor declares the filterable surface of Membership.
func MembershipFilterDescriptor() filter.Descriptor {
	return filter.Descriptor{
		Entity: "Membership",
		Attributes: withAudit(map[string]filter.Attribute{
			"user_id":   {Column: "user_id", Type: filter.TypeUUID},
			"group_id":  {Column: "group_id", Type: filter.TypeUUID},
			"valid":     {Column: "valid", Type: filter.TypeBool},
			"startdate": {Column: "startdate", Type: filter.TypeTimestamp},
			"enddate":   {Column: "enddate", Type: filter.TypeTimestamp},
		}),
	}
}
