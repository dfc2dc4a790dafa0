package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/philip98/obsidian-server/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	bookController *controllers.BookController,
	aliasController *controllers.AliasController,
	circulationController *controllers.CirculationController,
	reconciliationController *controllers.ReconciliationController,
	searchController *controllers.SearchController,
	importController *controllers.ImportController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/classes", studentController.GetClasses)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.POST("/import", importController.ImportRoster)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.POST("", teacherController.CreateTeacher)
		teachers.PUT("/:id", teacherController.UpdateTeacher)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)
	}

	books := v1.Group("/books")
	{
		books.GET("", bookController.GetAllBooks)
		books.GET("/:isbn", bookController.GetBookByISBN)
		books.POST("", bookController.CreateBook)
		books.PUT("/:isbn", bookController.UpdateBook)
		books.DELETE("/:isbn", bookController.DeleteBook)
	}

	aliases := v1.Group("/aliases")
	{
		aliases.GET("", aliasController.GetAllAliases)
		aliases.POST("", aliasController.CreateAlias)
		aliases.DELETE("/:alias", aliasController.DeleteAlias)
	}

	circulation := v1.Group("/circulation")
	{
		circulation.POST("/submit", circulationController.Submit)
	}

	reconciliation := v1.Group("/reconciliation")
	{
		reconciliation.GET("/classes", reconciliationController.GetClasses)
		reconciliation.GET("/:class", reconciliationController.GetMatrix)
	}

	search := v1.Group("/search")
	{
		search.GET("", searchController.GetEntities)
		search.GET("/:entity", searchController.Search)
		search.GET("/:entity/fields", searchController.GetFields)
	}
}
