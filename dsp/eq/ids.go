package eq

import (
	"fmt"
	"strconv"
	"strings"
)

// Role names one parameter of a band, or a global parameter.
type Role int

// Band roles.
const (
	RoleFrequency Role = iota
	RoleGain
	RoleQ
	RoleType
	RoleBypass

	numBandRoles
)

// Global roles, addressed with Band == GlobalBand.
const (
	RoleMasterBypass Role = numBandRoles + iota
	RoleOutputGain

	numRoles
)

// GlobalBand is the band index of global parameters.
const GlobalBand = -1

var roleNames = [numRoles]string{
	RoleFrequency:    "freq",
	RoleGain:         "gain",
	RoleQ:            "q",
	RoleType:         "type",
	RoleBypass:       "bypass",
	RoleMasterBypass: "bypass",
	RoleOutputGain:   "output",
}

// Global reports whether r addresses a global parameter.
func (r Role) Global() bool { return r >= numBandRoles && r < numRoles }

func (r Role) String() string {
	if r < 0 || r >= numRoles {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// ParamID identifies one parameter.
type ParamID struct {
	Band int
	Role Role
}

// BandParam returns the id of role r on band b.
func BandParam(b int, r Role) ParamID { return ParamID{Band: b, Role: r} }

// Global ids.
var (
	MasterBypass = ParamID{Band: GlobalBand, Role: RoleMasterBypass}
	OutputGain   = ParamID{Band: GlobalBand, Role: RoleOutputGain}
)

// String formats band parameters as "band<N>.<role>" and global ones as
// "<role>", for example "band2.freq" or "output".
func (id ParamID) String() string {
	if id.Role.Global() {
		return id.Role.String()
	}
	return "band" + strconv.Itoa(id.Band) + "." + id.Role.String()
}

// ParseParamID is the inverse of ParamID.String. Role names also accept a
// few spelled-out aliases ("frequency", "gain_db", ...).
func ParseParamID(s string) (ParamID, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "bypass", "master.bypass":
		return MasterBypass, nil
	case "output", "master.output", "outputgain":
		return OutputGain, nil
	}

	band, role, ok := strings.Cut(s, ".")
	if !ok || !strings.HasPrefix(band, "band") {
		return ParamID{}, fmt.Errorf("%w: %q", ErrUnknownParameter, s)
	}

	idx, err := strconv.Atoi(strings.TrimPrefix(band, "band"))
	if err != nil || idx < 0 {
		return ParamID{}, fmt.Errorf("%w: bad band index in %q", ErrUnknownParameter, s)
	}

	r, ok := parseBandRole(role)
	if !ok {
		return ParamID{}, fmt.Errorf("%w: unknown role in %q", ErrUnknownParameter, s)
	}
	return ParamID{Band: idx, Role: r}, nil
}

func parseBandRole(s string) (Role, bool) {
	switch s {
	case "freq", "frequency", "f":
		return RoleFrequency, true
	case "gain", "gain_db", "g":
		return RoleGain, true
	case "q", "resonance":
		return RoleQ, true
	case "type", "shape":
		return RoleType, true
	case "bypass", "off":
		return RoleBypass, true
	default:
		return 0, false
	}
}
