package rbac

import (
	"github.com/casbin/casbin/v2"
)

// Service answers "may this role perform this action on this resource".
// Roles arrive resolved from the access token; policies are file-based
// (infra/policy.csv) and shared across brands.
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
