package validators

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	repository "task-manager.com/task-manager/internal/repositories"
)

const dateLayout = "2006-01-02"

// ParseListTasksQuery turns query parameters into a repository filter.
// createdAt takes either an RFC 3339 timestamp or a plain date.
func ParseListTasksQuery(q *dto.ListTasksQuery) (repository.TaskFilter, error) {
	var filter repository.TaskFilter

	status, err := ParseTaskStatus(strings.TrimSpace(q.Status))
	if err != nil {
		return filter, err
	}
	filter.Status = status

	if assignee := strings.TrimSpace(q.AssignedUser); assignee != "" {
		filter.AssignedUser = &assignee
	}

	if raw := strings.TrimSpace(q.CreatedAt); raw != "" {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			ts = ts.UTC()
			filter.CreatedAt = &ts
		} else if day, err := time.Parse(dateLayout, raw); err == nil {
			filter.CreatedOn = &day
		} else {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "createdAt must be an RFC 3339 timestamp or a YYYY-MM-DD date")
		}
	}

	return filter, nil
}
