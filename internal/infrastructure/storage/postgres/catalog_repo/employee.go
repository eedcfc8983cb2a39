package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"comercio/internal/core/apperror"
	"comercio/internal/domain/catalogs/employee"
	"comercio/internal/infrastructure/storage/postgres"
)

const employeeTable = "cat_employees"

// EmployeeRepo implements employee.Repository.
type EmployeeRepo struct {
	*BaseCatalogRepo[*employee.Employee, int]
}

// NewEmployeeRepo creates a new employee repository.
func NewEmployeeRepo(txm *postgres.TxManager) *EmployeeRepo {
	return &EmployeeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*employee.Employee, int](txm, BaseRepoConfig[*employee.Employee]{
			TableName:  employeeTable,
			KeyColumn:  "code",
			SelectCols: postgres.ExtractDBColumns[employee.Employee](),
			SearchCols: []string{"name", "position"},
			DefaultOrd: "code ASC",
			NewFn:      func() *employee.Employee { return &employee.Employee{} },
		}),
	}
}

// Create inserts the employee and fills the generated code.
func (r *EmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	q := r.Builder().
		Insert(employeeTable).
		Columns("name", "position", "admission_date", "user_id").
		Values(e.Name, e.Position, e.AdmissionDate, e.UserID).
		Suffix("RETURNING code")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&e.Code); err != nil {
		return fmt.Errorf("insert %s: %w", employeeTable, err)
	}

	return nil
}

// GetByUserID retrieves the employee linked to a login account.
func (r *EmployeeRepo) GetByUserID(ctx context.Context, userID int) (*employee.Employee, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[employee.Employee]()...).
		From(employeeTable).
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1)

	e, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("employee", userID)
		}
		return nil, err
	}
	return e, nil
}
