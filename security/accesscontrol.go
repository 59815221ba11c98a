package security

import (
	"github.com/silicalabs/silica-sdk/storage"
	"github.com/silicalabs/silica-sdk/types"
)

const (
	ownerKey   = "__ac_owner"
	roleBucket = "__ac_roles"
)

// AdminRole is granted to the owner on initialization and moved on ownership
// transfer. Holding it authorizes role grants and revocations.
const AdminRole = "admin"

// AccessControl persists a single owner address and a (role, address) → bool
// table in the contract's storage namespace. The owner and the admin role are
// kept in sync by every mutation here.
type AccessControl struct {
	store *storage.Storage
	roles *storage.Map[string, bool]
}

// NewAccessControl binds access control state to store.
func NewAccessControl(store *storage.Storage) *AccessControl {
	return &AccessControl{
		store: store,
		roles: storage.NewMap[string, bool](store, roleBucket),
	}
}

func roleKey(role, address string) string {
	return role + ":" + address
}

// Initialize records owner and grants it the admin role. Call once, from the
// contract's own initialization entry point.
func (ac *AccessControl) Initialize(owner string) error {
	if err := ac.store.Set(ownerKey, owner); err != nil {
		return err
	}
	return ac.roles.Set(roleKey(AdminRole, owner), true)
}

// Owner returns the stored owner address, false when none was initialized or
// the read failed.
func (ac *AccessControl) Owner() (string, bool) {
	var owner string
	ok, err := ac.store.Get(ownerKey, &owner)
	if err != nil {
		return "", false
	}
	return owner, ok
}

// HasRole reports whether address holds role. Pure query: any storage error
// degrades to false, same contract as Storage.Has.
func (ac *AccessControl) HasRole(address, role string) bool {
	held, ok, err := ac.roles.Get(roleKey(role, address))
	return err == nil && ok && held
}

// GrantRole grants role to address. Only the owner or an admin may grant.
func (ac *AccessControl) GrantRole(granter, address, role string) error {
	allowed, err := ac.isOwnerOrAdmin(granter)
	if err != nil {
		return err
	}
	if !allowed {
		return types.ErrUnauthorized
	}
	return ac.roles.Set(roleKey(role, address), true)
}

// RevokeRole revokes role from address. Only the owner or an admin may
// revoke.
func (ac *AccessControl) RevokeRole(revoker, address, role string) error {
	allowed, err := ac.isOwnerOrAdmin(revoker)
	if err != nil {
		return err
	}
	if !allowed {
		return types.ErrUnauthorized
	}
	return ac.roles.Remove(roleKey(role, address))
}

// Authorize succeeds when caller is the owner, or when requiredRole is
// non-empty and caller holds it. An empty requiredRole means owner-only.
func (ac *AccessControl) Authorize(caller, requiredRole string) error {
	isOwner, err := ac.isOwner(caller)
	if err != nil {
		return err
	}
	if isOwner {
		return nil
	}

	if requiredRole != "" {
		held, ok, err := ac.roles.Get(roleKey(requiredRole, caller))
		if err != nil {
			return err
		}
		if ok && held {
			return nil
		}
	}
	return types.ErrUnauthorized
}

// TransferOwnership moves ownership from currentOwner to newOwner: owner
// pointer first, then grant admin to the new owner, then revoke it from the
// old one. The sequence is not crash-atomic; a host failure mid-way leaves
// two admins rather than zero, which is the recoverable side to fail on.
func (ac *AccessControl) TransferOwnership(currentOwner, newOwner string) error {
	isOwner, err := ac.isOwner(currentOwner)
	if err != nil {
		return err
	}
	if !isOwner {
		return types.ErrUnauthorized
	}

	if err := ac.store.Set(ownerKey, newOwner); err != nil {
		return err
	}
	if err := ac.roles.Set(roleKey(AdminRole, newOwner), true); err != nil {
		return err
	}
	return ac.roles.Remove(roleKey(AdminRole, currentOwner))
}

func (ac *AccessControl) isOwner(address string) (bool, error) {
	var owner string
	ok, err := ac.store.Get(ownerKey, &owner)
	if err != nil {
		return false, err
	}
	return ok && owner == address, nil
}

func (ac *AccessControl) isOwnerOrAdmin(address string) (bool, error) {
	isOwner, err := ac.isOwner(address)
	if err != nil {
		return false, err
	}
	if isOwner {
		return true, nil
	}
	held, ok, err := ac.roles.Get(roleKey(AdminRole, address))
	if err != nil {
		return false, err
	}
	return ok && held, nil
}
