package db

import (
	"context"
	"time"
)

// StaffStore defines the interface for staff roster operations
type StaffStore interface {
	GetStaff(ctx context.Context) ([]Staff, error)
	InsertStaff(ctx context.Context, staff *Staff) error
}

// InventoryStore defines the interface for per-day room inventory operations
type InventoryStore interface {
	ReplaceInventory(ctx context.Context, date time.Time, rooms []InventoryRoom) error
	GetInventory(ctx context.Context, date time.Time) ([]InventoryRoom, error)
}

// PlanStore defines the interface for allocation plan persistence
type PlanStore interface {
	SavePlan(ctx context.Context, plan *Plan, assignments []PlanAssignment, rooms []PlanRoom) error
	GetPlan(ctx context.Context, date time.Time) (*Plan, []PlanAssignment, []PlanRoom, error)
}

// Database defines the interface for all database operations
type Database interface {
	StaffStore
	InventoryStore
	PlanStore
}
