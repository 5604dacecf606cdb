package graph

// GraphQL models bound in gqlgen.yml. The where-filter inputs carry json tags
// matching the wire grammar (operator keys like _eq, attribute keys like
// name_en) so an input marshals straight into the map form the filter
// package validates.

type PageInfo struct {
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	TotalCount      int  `json:"totalCount"`
}

type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Email      *string `json:"email,omitempty"`
	Valid      bool    `json:"valid"`
	Created    string  `json:"created"`
	LastChange string  `json:"lastchange"`
	CreatedBy  *string `json:"createdby,omitempty"`
	ChangedBy  *string `json:"changedby,omitempty"`
}

type Group struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameEn        *string `json:"nameEn,omitempty"`
	Valid         bool    `json:"valid"`
	Created       string  `json:"created"`
	LastChange    string  `json:"lastchange"`
	CreatedBy     *string `json:"createdby,omitempty"`
	ChangedBy     *string `json:"changedby,omitempty"`
	GroupTypeID   *string `json:"-"`
	MasterGroupID *string `json:"-"`
}

type GroupType struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	NameEn     *string `json:"nameEn,omitempty"`
	Valid      bool    `json:"valid"`
	Created    string  `json:"created"`
	LastChange string  `json:"lastchange"`
	CreatedBy  *string `json:"createdby,omitempty"`
	ChangedBy  *string `json:"changedby,omitempty"`
}

type Membership struct {
	ID         string  `json:"id"`
	Valid      bool    `json:"valid"`
	StartDate  *string `json:"startdate,omitempty"`
	EndDate    *string `json:"enddate,omitempty"`
	Created    string  `json:"created"`
	LastChange string  `json:"lastchange"`
	CreatedBy  *string `json:"createdby,omitempty"`
	ChangedBy  *string `json:"changedby,omitempty"`
	UserID     string  `json:"-"`
	GroupID    string  `json:"-"`
}

type UserConnection struct {
	Users    []*User   `json:"users"`
	PageInfo *PageInfo `json:"pageInfo"`
}

type GroupConnection struct {
	Groups   []*Group  `json:"groups"`
	PageInfo *PageInfo `json:"pageInfo"`
}

type GroupTypeConnection struct {
	GroupTypes []*GroupType `json:"groupTypes"`
	PageInfo   *PageInfo    `json:"pageInfo"`
}

type MembershipConnection struct {
	Memberships []*Membership `json:"memberships"`
	PageInfo    *PageInfo     `json:"pageInfo"`
}

type StringFilter struct {
	Eq         *string  `json:"_eq,omitempty"`
	Lt         *string  `json:"_lt,omitempty"`
	Le         *string  `json:"_le,omitempty"`
	Gt         *string  `json:"_gt,omitempty"`
	Ge         *string  `json:"_ge,omitempty"`
	Like       *string  `json:"_like,omitempty"`
	Ilike      *string  `json:"_ilike,omitempty"`
	Startswith *string  `json:"_startswith,omitempty"`
	Endswith   *string  `json:"_endswith,omitempty"`
	In         []string `json:"_in,omitempty"`
}

type BoolFilter struct {
	Eq *bool `json:"_eq,omitempty"`
}

type UUIDFilter struct {
	Eq *string  `json:"_eq,omitempty"`
	In []string `json:"_in,omitempty"`
}

type DateTimeFilter struct {
	Eq *string `json:"_eq,omitempty"`
	Lt *string `json:"_lt,omitempty"`
	Le *string `json:"_le,omitempty"`
	Gt *string `json:"_gt,omitempty"`
	Ge *string `json:"_ge,omitempty"`
}

type UserWhereFilter struct {
	ID         *UUIDFilter        `json:"id,omitempty"`
	Name       *StringFilter      `json:"name,omitempty"`
	Surname    *StringFilter      `json:"surname,omitempty"`
	Email      *StringFilter      `json:"email,omitempty"`
	Valid      *BoolFilter        `json:"valid,omitempty"`
	Created    *DateTimeFilter    `json:"created,omitempty"`
	LastChange *DateTimeFilter    `json:"lastchange,omitempty"`
	CreatedBy  *UUIDFilter        `json:"createdby,omitempty"`
	ChangedBy  *UUIDFilter        `json:"changedby,omitempty"`
	And        []*UserWhereFilter `json:"_and,omitempty"`
	Or         []*UserWhereFilter `json:"_or,omitempty"`
}

type GroupWhereFilter struct {
	ID            *UUIDFilter         `json:"id,omitempty"`
	Name          *StringFilter       `json:"name,omitempty"`
	NameEn        *StringFilter       `json:"name_en,omitempty"`
	Valid         *BoolFilter         `json:"valid,omitempty"`
	GroupTypeID   *UUIDFilter         `json:"grouptype_id,omitempty"`
	MasterGroupID *UUIDFilter         `json:"mastergroup_id,omitempty"`
	Created       *DateTimeFilter     `json:"created,omitempty"`
	LastChange    *DateTimeFilter     `json:"lastchange,omitempty"`
	CreatedBy     *UUIDFilter         `json:"createdby,omitempty"`
	ChangedBy     *UUIDFilter         `json:"changedby,omitempty"`
	And           []*GroupWhereFilter `json:"_and,omitempty"`
	Or            []*GroupWhereFilter `json:"_or,omitempty"`
}

type GroupTypeWhereFilter struct {
	ID         *UUIDFilter             `json:"id,omitempty"`
	Name       *StringFilter           `json:"name,omitempty"`
	NameEn     *StringFilter           `json:"name_en,omitempty"`
	Valid      *BoolFilter             `json:"valid,omitempty"`
	Created    *DateTimeFilter         `json:"created,omitempty"`
	LastChange *DateTimeFilter         `json:"lastchange,omitempty"`
	CreatedBy  *UUIDFilter             `json:"createdby,omitempty"`
	ChangedBy  *UUIDFilter             `json:"changedby,omitempty"`
	And        []*GroupTypeWhereFilter `json:"_and,omitempty"`
	Or         []*GroupTypeWhereFilter `json:"_or,omitempty"`
}

type MembershipWhereFilter struct {
	ID         *UUIDFilter              `json:"id,omitempty"`
	UserID     *UUIDFilter              `json:"user_id,omitempty"`
	GroupID    *UUIDFilter              `json:"group_id,omitempty"`
	Valid      *BoolFilter              `json:"valid,omitempty"`
	StartDate  *DateTimeFilter          `json:"startdate,omitempty"`
	EndDate    *DateTimeFilter          `json:"enddate,omitempty"`
	Created    *DateTimeFilter          `json:"created,omitempty"`
	LastChange *DateTimeFilter          `json:"lastchange,omitempty"`
	CreatedBy  *UUIDFilter              `json:"createdby,omitempty"`
	ChangedBy  *UUIDFilter              `json:"changedby,omitempty"`
	And        []*MembershipWhereFilter `json:"_and,omitempty"`
	Or         []*MembershipWhereFilter `json:"_or,omitempty"`
}

type UserInsertInput struct {
	ID      *string `json:"id,omitempty"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Email   *string `json:"email,omitempty"`
	Valid   *bool   `json:"valid,omitempty"`
}

type UserUpdateInput struct {
	ID         string  `json:"id"`
	LastChange string  `json:"lastchange"`
	Name       *string `json:"name,omitempty"`
	Surname    *string `json:"surname,omitempty"`
	Email      *string `json:"email,omitempty"`
	Valid      *bool   `json:"valid,omitempty"`
}

type GroupInsertInput struct {
	ID            *string `json:"id,omitempty"`
	Name          string  `json:"name"`
	NameEn        *string `json:"nameEn,omitempty"`
	GroupTypeID   *string `json:"groupTypeId,omitempty"`
	MasterGroupID *string `json:"masterGroupId,omitempty"`
	Valid         *bool   `json:"valid,omitempty"`
}

type GroupUpdateInput struct {
	ID          string  `json:"id"`
	LastChange  string  `json:"lastchange"`
	Name        *string `json:"name,omitempty"`
	NameEn      *string `json:"nameEn,omitempty"`
	GroupTypeID *string `json:"groupTypeId,omitempty"`
	Valid       *bool   `json:"valid,omitempty"`
}

type GroupUpdateMasterInput struct {
	ID            string `json:"id"`
	LastChange    string `json:"lastchange"`
	MasterGroupID string `json:"masterGroupId"`
}

type GroupTypeInsertInput struct {
	ID     *string `json:"id,omitempty"`
	Name   string  `json:"name"`
	NameEn *string `json:"nameEn,omitempty"`
	Valid  *bool   `json:"valid,omitempty"`
}

type GroupTypeUpdateInput struct {
	ID         string  `json:"id"`
	LastChange string  `json:"lastchange"`
	Name       *string `json:"name,omitempty"`
	NameEn     *string `json:"nameEn,omitempty"`
	Valid      *bool   `json:"valid,omitempty"`
}

type MembershipInsertInput struct {
	ID        *string `json:"id,omitempty"`
	UserID    string  `json:"userId"`
	GroupID   string  `json:"groupId"`
	Valid     *bool   `json:"valid,omitempty"`
	StartDate *string `json:"startdate,omitempty"`
	EndDate   *string `json:"enddate,omitempty"`
}

type MembershipUpdateInput struct {
	ID         string  `json:"id"`
	LastChange string  `json:"lastchange"`
	Valid      *bool   `json:"valid,omitempty"`
	StartDate  *string `json:"startdate,omitempty"`
	EndDate    *string `json:"enddate,omitempty"`
}

type UserResult struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}

type GroupResult struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}

type GroupTypeResult struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}

type MembershipResult struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}
