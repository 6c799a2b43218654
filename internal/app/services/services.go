package services

import (
	"github.com/google/uuid"
	"github.com/yigit/facultyhub/internal/app/models"
)

// Services defined in this package:
// - AuthService: sign-up, sign-in with role cross-check, sessions
// - RoleService: role lookup and assignment
// - DepartmentService, FacultyService, CourseService: catalogue CRUD
// - ProfileService: office hours and publications
// - CertificateService: certificate files and their metadata index
// - DashboardService: role specific dashboard view models

// Notifier pushes a notification to the live connections of a user
type Notifier interface {
	Notify(userID uuid.UUID, n models.Notification)
}

// NopNotifier drops every notification
type NopNotifier struct{}

// Notify implements Notifier
func (NopNotifier) Notify(uuid.UUID, models.Notification) {}
