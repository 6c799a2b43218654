package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyhub/internal/app/controllers"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/middleware"
)

// APIBasePath prefixes every API route
const APIBasePath = "/api/v1"

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Department   *controllers.DepartmentController
	Faculty      *controllers.FacultyController
	Course       *controllers.CourseController
	Certificate  *controllers.CertificateController
	Profile      *controllers.ProfileController
	Role         *controllers.RoleController
	Layout       *controllers.LayoutController
	Notification *controllers.NotificationController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group(APIBasePath)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", c.Auth.SignUp)
		auth.POST("/signin", c.Auth.SignIn)
		auth.POST("/refresh", c.Auth.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	managers := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleHOD)

	authenticated.POST("/auth/signout", c.Auth.SignOut)
	authenticated.GET("/auth/session", c.Auth.Session)
	authenticated.GET("/navigation", c.Layout.GetNavigation)
	authenticated.GET("/dashboard", c.Layout.GetDashboard)
	authenticated.GET("/notifications/ws", c.Notification.Connect)

	departments := authenticated.Group("/departments")
	{
		departments.GET("", c.Department.GetAllDepartments)
		departments.GET("/:id", c.Department.GetDepartmentByID)
		departments.POST("", adminOnly, c.Department.CreateDepartment)
		departments.PUT("/:id", adminOnly, c.Department.UpdateDepartment)
		departments.DELETE("/:id", adminOnly, c.Department.DeleteDepartment)

		departments.GET("/:id/faculty-members", c.Faculty.ListDepartmentFacultyMembers)
		departments.POST("/:id/faculty-members", managers, c.Faculty.CreateFacultyMember)
	}

	faculty := authenticated.Group("/faculty-members")
	{
		faculty.GET("", c.Faculty.ListFacultyMembers)
		faculty.GET("/me", c.Faculty.GetMyProfile)
		faculty.GET("/:id", c.Faculty.GetFacultyMember)
		faculty.PUT("/:id", managers, c.Faculty.UpdateFacultyMember)
		faculty.DELETE("/:id", managers, c.Faculty.DeleteFacultyMember)

		// Scoped per faculty member by the services
		faculty.GET("/:id/certificates", c.Certificate.ListCertificates)
		faculty.POST("/:id/certificates", c.Certificate.UploadCertificate)
		faculty.GET("/:id/certificates/:fileName", c.Certificate.DownloadCertificate)
		faculty.DELETE("/:id/certificates/:fileName", c.Certificate.DeleteCertificate)

		faculty.GET("/:id/office-hours", c.Profile.ListOfficeHours)
		faculty.POST("/:id/office-hours", c.Profile.AddOfficeHour)
		faculty.GET("/:id/publications", c.Profile.ListPublications)
		faculty.POST("/:id/publications", c.Profile.AddPublication)
	}
	authenticated.DELETE("/office-hours/:id", c.Profile.DeleteOfficeHour)
	authenticated.DELETE("/publications/:id", c.Profile.DeletePublication)

	courses := authenticated.Group("/courses")
	{
		courses.GET("", c.Course.ListCourses)
		courses.GET("/:id", c.Course.GetCourse)
		courses.POST("", managers, c.Course.CreateCourse)
		courses.PUT("/:id", managers, c.Course.UpdateCourse)
		courses.PUT("/:id/faculty", managers, c.Course.AssignFaculty)
		courses.DELETE("/:id", managers, c.Course.DeleteCourse)
	}

	roles := authenticated.Group("", adminOnly)
	{
		roles.GET("/roles", c.Role.ListRoles)
		roles.GET("/user-roles", c.Role.ListAssignments)
		roles.PUT("/user-roles/:userId", c.Role.AssignRole)
		roles.DELETE("/user-roles/:userId", c.Role.RemoveRole)
	}
}
