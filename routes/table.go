package routes

import (
	"errors"
	"sync"
)

// Role defines a public type used by Planner session APIs.
//
// Role instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Role string

const (
	// RoleRegularUser is an exported constant or variable used by the session client.
	RoleRegularUser Role = "regular_user"
	// RoleSuperAdmin is an exported constant or variable used by the session client.
	RoleSuperAdmin Role = "super_admin"
)

// Section defines a public type used by Planner session APIs.
//
// Section instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Section string

const (
	// SectionDashboard is an exported constant or variable used by the session client.
	SectionDashboard Section = "dashboard"
	// SectionTasks is an exported constant or variable used by the session client.
	SectionTasks Section = "tasks"
	// SectionCalendar is an exported constant or variable used by the session client.
	SectionCalendar Section = "calendar"
	// SectionTemplates is an exported constant or variable used by the session client.
	SectionTemplates Section = "templates"
	// SectionInsights is an exported constant or variable used by the session client.
	SectionInsights Section = "insights"
	// SectionSettings is an exported constant or variable used by the session client.
	SectionSettings Section = "settings"
	// SectionSysDashboard is an exported constant or variable used by the session client.
	SectionSysDashboard Section = "sys_dashboard"
	// SectionSysUsers is an exported constant or variable used by the session client.
	SectionSysUsers Section = "sys_users"
	// SectionSysTemplates is an exported constant or variable used by the session client.
	SectionSysTemplates Section = "sys_templates"
	// SectionSysML is an exported constant or variable used by the session client.
	SectionSysML Section = "sys_ml"
	// SectionSysLogs is an exported constant or variable used by the session client.
	SectionSysLogs Section = "sys_logs"
)

// LoginPath is an exported constant or variable used by the session client.
const LoginPath = "/login"

// Route defines a public type used by Planner session APIs.
//
// Route instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Route struct {
	Section Section
	Path    string

	// AllowedRoles restricts the route to the listed roles. Empty means any
	// authenticated role may render the section.
	AllowedRoles []Role
}

// Table defines a public type used by Planner session APIs.
//
// Table instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Table struct {
	mu        sync.RWMutex
	byPath    map[string]Route
	bySection map[Section]Route
	frozen    bool
}

// NewTable describes the newtable operation and its observable behavior.
//
// NewTable may return an error when input validation, dependency calls, or security checks fail.
// NewTable does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewTable() *Table {
	return &Table{
		byPath:    make(map[string]Route),
		bySection: make(map[Section]Route),
	}
}

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
// Register does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (t *Table) Register(route Route) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		return errors.New("route table frozen")
	}

	if route.Section == "" {
		return errors.New("route section cannot be empty")
	}

	if len(route.Path) == 0 || route.Path[0] != '/' {
		return errors.New("route path must start with /")
	}

	if _, exists := t.bySection[route.Section]; exists {
		return errors.New("section already registered")
	}

	if _, exists := t.byPath[route.Path]; exists {
		return errors.New("path already registered")
	}

	t.byPath[route.Path] = route
	t.bySection[route.Section] = route

	return nil
}

// Freeze prevents further registrations. Must be called before the table is
// used for guard decisions.
func (t *Table) Freeze() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozen = true
}

// SectionForPath returns the section mapped to path, or false if the path is
// unmapped. Unmapped input is never an error.
func (t *Table) SectionForPath(path string) (Section, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	route, ok := t.byPath[path]
	return route.Section, ok
}

// PathForSection returns the path mapped to section, or false if the section
// is unmapped.
func (t *Table) PathForSection(section Section) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	route, ok := t.bySection[section]
	return route.Path, ok
}

// IsProtected reports whether path maps to a known section. Every mapped path
// requires an authenticated session to render.
func (t *Table) IsProtected(path string) bool {
	_, ok := t.SectionForPath(path)
	return ok
}

// Allowed reports whether role may render the section behind path. Routes
// with an empty allow-list admit any role; unmapped paths admit none.
func (t *Table) Allowed(path string, role Role) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	route, ok := t.byPath[path]
	if !ok {
		return false
	}
	if len(route.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range route.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

// OwnerRole classifies path into the disjoint super-admin or regular path
// set used by the post-login redirect resolver. A path whose allow-list is
// exactly the super-admin role belongs to [RoleSuperAdmin]; every other
// mapped path belongs to [RoleRegularUser].
func (t *Table) OwnerRole(path string) (Role, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	route, ok := t.byPath[path]
	if !ok {
		return "", false
	}
	if len(route.AllowedRoles) == 1 && route.AllowedRoles[0] == RoleSuperAdmin {
		return RoleSuperAdmin, true
	}
	return RoleRegularUser, true
}

// DefaultLanding returns the default authenticated landing path for role:
// the super-admin dashboard for [RoleSuperAdmin], the regular dashboard for
// every other role including an absent one.
func (t *Table) DefaultLanding(role Role) string {
	section := SectionDashboard
	if role == RoleSuperAdmin {
		section = SectionSysDashboard
	}

	path, ok := t.PathForSection(section)
	if !ok {
		return LoginPath
	}
	return path
}

// Sections returns every registered section. Order is unspecified.
func (t *Table) Sections() []Section {
	t.mu.RLock()
	defer t.mu.RUnlock()

	sections := make([]Section, 0, len(t.bySection))
	for section := range t.bySection {
		sections = append(sections, section)
	}
	return sections
}

// Default describes the default operation and its observable behavior.
//
// Default returns the frozen Planner route table: the six regular sections
// open to any authenticated role and the five super-admin sections restricted
// to [RoleSuperAdmin].
func Default() *Table {
	t := NewTable()

	regular := []Route{
		{Section: SectionDashboard, Path: "/dashboard"},
		{Section: SectionTasks, Path: "/tasks"},
		{Section: SectionCalendar, Path: "/calendar"},
		{Section: SectionTemplates, Path: "/templates"},
		{Section: SectionInsights, Path: "/insights"},
		{Section: SectionSettings, Path: "/settings"},
	}

	super := []Route{
		{Section: SectionSysDashboard, Path: "/admin-dashboard"},
		{Section: SectionSysUsers, Path: "/admin-users"},
		{Section: SectionSysTemplates, Path: "/admin-templates"},
		{Section: SectionSysML, Path: "/admin-ml"},
		{Section: SectionSysLogs, Path: "/logs"},
	}

	for _, route := range regular {
		if err := t.Register(route); err != nil {
			panic(err)
		}
	}
	for _, route := range super {
		route.AllowedRoles = []Role{RoleSuperAdmin}
		if err := t.Register(route); err != nil {
			panic(err)
		}
	}

	t.Freeze()
	return t
}
