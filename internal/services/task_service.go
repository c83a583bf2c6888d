package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

type TaskService struct {
	repo  *repository.TaskRepository
	users *repository.UserRepository
}

func NewTaskService(repo *repository.TaskRepository, users *repository.UserRepository) *TaskService {
	return &TaskService{
		repo:  repo,
		users: users,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, title, description, creatorID string) (*model.Task, error) {
	task, err := s.repo.CreateTask(ctx, title, description, creatorID)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.ErrInvalidTaskStatus
	}

	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateTaskErr(err, "find task")
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id, callerID string, input dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if !task.MutableBy(callerID) {
		return nil, apperrors.ErrForbiddenUpdateTask
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if len(fields) == 0 {
		return task, nil
	}

	return s.apply(ctx, task.ID, fields)
}

func (s *TaskService) ChangeStatus(ctx context.Context, id, callerID string, status constants.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidTaskStatus
	}

	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if !task.MutableBy(callerID) {
		return nil, apperrors.ErrForbiddenStatusChangeTask
	}

	return s.apply(ctx, task.ID, map[string]interface{}{"status": status})
}

// AssignUser sets the assignee. An assigned task can only be handed over by
// its current assignee; re-assigning the same user is a no-op update.
func (s *TaskService) AssignUser(ctx context.Context, id, callerID, assigneeID string) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	assignee, err := s.users.FindByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find assignee: %w", err)
	}

	if task.IsAssigned() && *task.AssignedUser != assignee.ID && *task.AssignedUser != callerID {
		return nil, apperrors.ErrForbiddenAssignTask
	}

	return s.apply(ctx, task.ID, map[string]interface{}{"assigned_user": assignee.ID})
}

func (s *TaskService) DeleteTask(ctx context.Context, id, callerID string) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if !task.MutableBy(callerID) {
		return nil, apperrors.ErrForbiddenDeleteTask
	}

	if err := s.repo.Delete(ctx, task.ID); err != nil {
		return nil, translateTaskErr(err, "delete task")
	}

	return task, nil
}

func (s *TaskService) apply(ctx context.Context, id string, fields map[string]interface{}) (*model.Task, error) {
	task, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, translateTaskErr(err, "update task")
	}
	return task, nil
}

func translateTaskErr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
