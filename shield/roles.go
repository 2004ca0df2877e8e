package shield

// Role tags the purpose of a derived keypair. Each role gets its own HD
// leaf and its own domain-separated signing and encryption keypairs.
type Role string

const (
	// RoleNightExternal is the external spend authority for the unshielded
	// token. Compatibility-constrained wallets derive only this role.
	RoleNightExternal Role = "NightExternal"
	// RoleNightInternal is the internal change authority.
	RoleNightInternal Role = "NightInternal"
	// RoleDust is the fee/gas token role.
	RoleDust Role = "Dust"
	// RoleZswap is the shielded-protocol role.
	RoleZswap Role = "Zswap"
	// RoleMetadata is the metadata/signing role.
	RoleMetadata Role = "Metadata"
)

// AllRoles is the canonical role set in derivation order. The position of a
// role in this slice is its HD path index and must never change.
var AllRoles = []Role{
	RoleNightExternal,
	RoleNightInternal,
	RoleDust,
	RoleZswap,
	RoleMetadata,
}

// Index returns the role's fixed HD path index.
func (r Role) Index() (uint32, bool) {
	for i, role := range AllRoles {
		if role == r {
			return uint32(i), true
		}
	}
	return 0, false
}

// Valid reports whether r is one of the canonical roles.
func (r Role) Valid() bool {
	_, ok := r.Index()
	return ok
}
