package mixin

import (
	"fmt"
	"testing"

	"github.com/ygrebnov/mixin/behavior"
)

// ---- Types under test ----

// user is the base class's instance shape.
type user struct {
	ID   int
	Name string
	Tags []string
}

type userArgs struct {
	ID   int
	Name string
}

func newUser(a userArgs) (*user, error) {
	return &user{ID: a.ID, Name: a.Name, Tags: []string{"user"}}, nil
}

// auditTrail is the extension class's instance shape. Name collides with
// user.Name on purpose.
type auditTrail struct {
	Name    string
	Entries map[string]string
}

type auditArgs struct {
	Name string
}

func newAuditTrail(a auditArgs) (*auditTrail, error) {
	return &auditTrail{Name: a.Name, Entries: map[string]string{"created": a.Name}}, nil
}

// ---- Helpers ----

func mustDynamic(t *testing.T, name string, fn behavior.Func) behavior.Behavior {
	t.Helper()
	b, err := behavior.New(name, fn)
	if err != nil {
		t.Fatalf("behavior.New(%q) error: %v", name, err)
	}
	return b
}

func describeUser(recv behavior.Receiver, _ ...string) (any, error) {
	id, _ := recv.Field("ID")
	return fmt.Sprintf("user:%v", id), nil
}

func describeAudit(recv behavior.Receiver, _ ...string) (any, error) {
	name, _ := recv.Field("Name")
	return fmt.Sprintf("audit:%v", name), nil
}

func userClass(t *testing.T, opts ...ClassOption) *Class[userArgs, user] {
	t.Helper()
	c, err := NewClass(newUser, opts...)
	if err != nil {
		t.Fatalf("NewClass(newUser) error: %v", err)
	}
	return c
}

func auditClass(t *testing.T, opts ...ClassOption) *Class[auditArgs, auditTrail] {
	t.Helper()
	c, err := NewClass(newAuditTrail, opts...)
	if err != nil {
		t.Fatalf("NewClass(newAuditTrail) error: %v", err)
	}
	return c
}
