package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/facultyhub/internal/db"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the same
// repository code runs inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          IUserRepository
	SessionRepository       ISessionRepository
	RoleRepository          IRoleRepository
	DepartmentRepository    IDepartmentRepository
	FacultyMemberRepository IFacultyMemberRepository
	CourseRepository        ICourseRepository
	OfficeHourRepository    IOfficeHourRepository
	PublicationRepository   IPublicationRepository
}

// NewRepositories initializes all repositories on top of q
func NewRepositories(q Querier) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(q),
		SessionRepository:       NewSessionRepository(q),
		RoleRepository:          NewRoleRepository(q),
		DepartmentRepository:    NewDepartmentRepository(q),
		FacultyMemberRepository: NewFacultyMemberRepository(q),
		CourseRepository:        NewCourseRepository(q),
		OfficeHourRepository:    NewOfficeHourRepository(q),
		PublicationRepository:   NewPublicationRepository(q),
	}
}

// TxFn receives repositories bound to the running transaction
type TxFn func(ctx context.Context, repos *Repositories) error

// TxManager runs a group of repository calls atomically
type TxManager interface {
	WithTransaction(ctx context.Context, fn TxFn) error
}

// PgTxManager implements TxManager on a PostgreSQL pool
type PgTxManager struct {
	db *db.PostgresDB
}

// NewTxManager creates a transaction manager for the given database
func NewTxManager(database *db.PostgresDB) *PgTxManager {
	return &PgTxManager{db: database}
}

// WithTransaction commits when fn returns nil and rolls back otherwise
func (m *PgTxManager) WithTransaction(ctx context.Context, fn TxFn) error {
	return m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, NewRepositories(tx))
	})
}
