package services

import (
	"github.com/philip98/obsidian-server/internal/app/repositories"
)

// Services holds all the service instances
type Services struct {
	StudentService        *StudentService
	TeacherService        *TeacherService
	BookService           *BookService
	AliasService          *AliasService
	CirculationService    *CirculationService
	ReconciliationService *ReconciliationService
	SearchService         *SearchService
	ImportService         *ImportService
}

// NewServices initializes all services on top of the repositories
func NewServices(repos *repositories.Repositories) *Services {
	resolver := NewBookResolver(repos.AliasRepository, repos.BookRepository)

	return &Services{
		StudentService: NewStudentService(repos.StudentRepository),
		TeacherService: NewTeacherService(repos.TeacherRepository),
		BookService:    NewBookService(repos.BookRepository),
		AliasService:   NewAliasService(repos.AliasRepository),
		CirculationService: NewCirculationService(
			resolver,
			repos.LoanRepository,
			repos.SwapRepository,
			repos.StudentRepository,
			repos.TeacherRepository,
		),
		ReconciliationService: NewReconciliationService(
			repos.StudentRepository,
			repos.BookRepository,
			repos.SwapRepository,
			repos.LoanRepository,
		),
		SearchService: NewSearchService(repos.SearchRepository),
		ImportService: NewImportService(repos.StudentRepository),
	}
}
