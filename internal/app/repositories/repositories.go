package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	TeacherRepository *TeacherRepository
	BookRepository    *BookRepository
	AliasRepository   *AliasRepository
	LoanRepository    *LoanRepository
	SwapRepository    *SwapRepository
	SearchRepository  *SearchRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		TeacherRepository: NewTeacherRepository(db),
		BookRepository:    NewBookRepository(db),
		AliasRepository:   NewAliasRepository(db),
		LoanRepository:    NewLoanRepository(db),
		SwapRepository:    NewSwapRepository(db),
		SearchRepository:  NewSearchRepository(db),
	}
}
