package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Permission is a closed set of role names. Anything outside this set is
// rejected at the edge, never stored.
type Permission string

const (
	PermissionUser             Permission = "USER"
	PermissionAdmin            Permission = "ADMIN"
	PermissionItemCreate       Permission = "ITEMCREATE"
	PermissionItemUpdate       Permission = "ITEMUPDATE"
	PermissionItemDelete       Permission = "ITEMDELETE"
	PermissionPermissionUpdate Permission = "PERMISSIONUPDATE"
)

// ParsePermission validates a raw role name against the closed set.
func ParsePermission(raw string) (Permission, error) {
	p := Permission(strings.ToUpper(strings.TrimSpace(raw)))
	switch p {
	case PermissionUser, PermissionAdmin, PermissionItemCreate,
		PermissionItemUpdate, PermissionItemDelete, PermissionPermissionUpdate:
		return p, nil
	}
	return "", fmt.Errorf("unknown permission %q", raw)
}

// PermissionSet is a user's role set, stored as a single comma-joined column.
type PermissionSet []Permission

// Has reports whether the set contains p.
func (s PermissionSet) Has(p Permission) bool {
	for _, member := range s {
		if member == p {
			return true
		}
	}
	return false
}

// Intersects reports whether the set shares at least one role with required.
func (s PermissionSet) Intersects(required ...Permission) bool {
	for _, p := range required {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer.
func (s PermissionSet) Value() (driver.Value, error) {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = string(p)
	}
	return strings.Join(names, ","), nil
}

// Scan implements sql.Scanner.
func (s *PermissionSet) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into PermissionSet", src)
	}

	if raw == "" {
		*s = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	set := make(PermissionSet, 0, len(parts))
	for _, part := range parts {
		p, err := ParsePermission(part)
		if err != nil {
			return err
		}
		set = append(set, p)
	}
	*s = set
	return nil
}
