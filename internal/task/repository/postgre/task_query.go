package postgre

import (
	"fmt"
	"strings"

	repo "echonote/internal/task/repository"
)

// buildUpdateQuery builds a partial UPDATE: one SET clause per non-nil field,
// always guarded by id AND owner_id. args always starts with id and owner.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	args := []any{opt.ID, opt.OwnerID}
	var sets []string
	idx := 3

	if opt.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", idx))
		args = append(args, *opt.Name)
		idx++
	}
	if opt.Completed != nil {
		sets = append(sets, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}
	if opt.DueDate != nil {
		sets = append(sets, fmt.Sprintf("due_date = $%d", idx))
		args = append(args, *opt.DueDate)
		idx++
	}

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, completed, due_date, raw_text, created_at`,
		strings.Join(sets, ", "))

	return query, args
}
