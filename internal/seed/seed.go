package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/philip98/obsidian-server/internal/app/models"
	appRepos "github.com/philip98/obsidian-server/internal/app/repositories"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

// CreateDemoData fills an empty development database with a small roster,
// a few books and their scan aliases. Databases that already hold students
// are left untouched.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	students, err := repos.StudentRepository.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(students) > 0 {
		lgr.Debug().Int("students", len(students)).Msg("Database already populated, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo data...")
	var finalErr error

	gradYear := appModels.SchoolYearEnd(time.Now()) + appModels.FinalGrade - 7

	demoStudents := []*appModels.Student{
		{Name: "Anna Schmidt", GraduationYear: gradYear, FormLetter: "a"},
		{Name: "Ben Fischer", GraduationYear: gradYear, FormLetter: "a"},
		{Name: "Clara Weber", GraduationYear: gradYear, FormLetter: "b"},
	}
	for _, student := range demoStudents {
		if err := repos.StudentRepository.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Str("name", student.Name).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	demoTeacher := &appModels.Teacher{Name: "Maria Keller", Abbreviation: "KE"}
	if err := repos.TeacherRepository.Create(ctx, demoTeacher); err != nil && !errors.Is(err, apperrors.ErrTeacherExists) {
		lgr.Error().Err(err).Msg("Error creating demo teacher")
		finalErr = errors.Join(finalErr, err)
	}

	demoBooks := []*appModels.Book{
		{ISBN: "978-3-12-104104-6", Title: "Green Line 3", GradeTag: "7"},
		{ISBN: "978-3-12-734421-2", Title: "Lambacher Schweizer 7", GradeTag: "7"},
		{ISBN: "978-3-06-060214-7", Title: "Fokus Biologie", GradeTag: "7/8"},
	}
	for _, book := range demoBooks {
		if err := repos.BookRepository.Create(ctx, book); err != nil && !errors.Is(err, apperrors.ErrBookExists) {
			lgr.Error().Err(err).Str("isbn", book.ISBN).Msg("Error creating demo book")
			finalErr = errors.Join(finalErr, err)
		}
	}

	demoAliases := []*appModels.Alias{
		{Alias: "gl3", ISBN: "978-3-12-104104-6"},
		{Alias: "ls7", ISBN: "978-3-12-734421-2"},
	}
	for _, alias := range demoAliases {
		if err := repos.AliasRepository.Create(ctx, alias); err != nil && !errors.Is(err, apperrors.ErrAliasExists) {
			lgr.Error().Err(err).Str("alias", alias.Alias).Msg("Error creating demo alias")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo data created.")
	}
	return finalErr
}
