package views

import (
	"context"
	"strings"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/logging"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"golang.org/x/sync/errgroup"
)

// Notification read-status filter values
const (
	ReadFilterAll    = "all"
	ReadFilterUnread = "unread"
	ReadFilterRead   = "read"
)

type NotificationFilter struct {
	Search string `form:"search"`
	Type   string `form:"type"`
	Status string `form:"status"`
}

type NotificationInput struct {
	NotificationType models.NotificationType `json:"notificationType"`
	Message          string                  `json:"message"`
	Priority         models.Priority         `json:"priority"`
	RelatedItem      string                  `json:"relatedItem"`
	ActionURL        string                  `json:"actionUrl"`
}

type NotificationItem struct {
	models.Notification
	TypeLabel string `json:"typeLabel"`
}

func notificationItems(notifications []models.Notification) []NotificationItem {
	items := make([]NotificationItem, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, NotificationItem{Notification: n, TypeLabel: n.NotificationType.Label()})
	}
	return items
}

func newerNotification(a, b models.Notification) bool {
	return a.SortTime().After(b.SortTime())
}

type Notifications struct {
	repos store.Repositories
	push  Publisher

	notifications []models.Notification
	status        Status
}

func NewNotifications(repos store.Repositories, integrations Integrations) *Notifications {
	return &Notifications{repos: repos, push: integrations.Push}
}

func (v *Notifications) Load(ctx context.Context) Status {
	var notifications []models.Notification
	err := loadAll(ctx, listInto[models.Notification](v.repos.Notifications, &notifications))
	v.status = settle("notifications", err)
	if err != nil {
		v.notifications = nil
		return v.status
	}
	v.notifications = notifications
	return v.status
}

func (v *Notifications) refresh(ctx context.Context) {
	notifications, err := v.repos.Notifications.ListAll(ctx)
	if err != nil {
		v.status = settle("notifications", err)
		return
	}
	v.notifications = notifications
	v.status = Status{Loaded: true}
}

// Filter matches message or type, an exact type and the read status, newest first
func (v *Notifications) Filter(f NotificationFilter) []NotificationItem {
	status := strings.ToLower(strings.TrimSpace(f.Status))
	matched := []models.Notification{}
	for _, n := range v.notifications {
		if !containsFold(f.Search, n.Message, string(n.NotificationType)) {
			continue
		}
		if !isAll(f.Type) && string(n.NotificationType) != strings.TrimSpace(f.Type) {
			continue
		}
		if status == ReadFilterUnread && n.IsRead {
			continue
		}
		if status == ReadFilterRead && !n.IsRead {
			continue
		}
		matched = append(matched, n)
	}
	return notificationItems(sortedCopy(matched, newerNotification))
}

type NotificationStats struct {
	Total              int `json:"total"`
	Unread             int `json:"unread"`
	HighPriorityUnread int `json:"highPriorityUnread"`
}

func (v *Notifications) Stats() NotificationStats {
	s := NotificationStats{Total: len(v.notifications)}
	for _, n := range v.notifications {
		if n.IsRead {
			continue
		}
		s.Unread++
		if n.Priority == models.PriorityHigh {
			s.HighPriorityUnread++
		}
	}
	return s
}

// MarkAsRead marks one notification from the snapshot. Unknown or already-read ids are a no-op.
func (v *Notifications) MarkAsRead(ctx context.Context, id string) error {
	var target *models.Notification
	for i := range v.notifications {
		if v.notifications[i].ID == id {
			target = &v.notifications[i]
			break
		}
	}
	if target == nil || target.IsRead {
		return nil
	}

	updated := *target
	updated.IsRead = true
	if _, err := v.repos.Notifications.Update(ctx, updated); err != nil {
		logMutation("notifications", "mark as read", err, logging.Fields{"notification_id": id})
		return err
	}
	v.refresh(ctx)
	return nil
}

// MarkAllAsRead updates every unread notification concurrently, then re-fetches
func (v *Notifications) MarkAllAsRead(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, n := range v.notifications {
		if n.IsRead {
			continue
		}
		n := n
		n.IsRead = true
		g.Go(func() error {
			_, err := v.repos.Notifications.Update(gctx, n)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		logMutation("notifications", "mark all as read", err, nil)
		return err
	}
	v.refresh(ctx)
	return nil
}

// CreateNotification stores the notification and pushes it to subscribed devices.
// A failed push is logged and does not fail the call.
func (v *Notifications) CreateNotification(ctx context.Context, in NotificationInput) (models.Notification, error) {
	n := models.Notification{
		ID:               newID(),
		NotificationType: in.NotificationType,
		Message:          strings.TrimSpace(in.Message),
		CreatedAt:        now(),
		Priority:         in.Priority,
		RelatedItem:      in.RelatedItem,
		ActionURL:        in.ActionURL,
	}
	if n.NotificationType == "" {
		n.NotificationType = models.NotificationTypeAlert
	}
	if n.Priority == "" {
		n.Priority = models.PriorityMedium
	}

	created, err := v.repos.Notifications.Create(ctx, n)
	if err != nil {
		logMutation("notifications", "create notification", err, logging.Fields{"notification_id": n.ID})
		return models.Notification{}, err
	}

	if v.push != nil {
		data := map[string]string{
			"id":       created.ID,
			"type":     string(created.NotificationType),
			"priority": string(created.Priority),
		}
		if created.ActionURL != "" {
			data["actionUrl"] = created.ActionURL
		}
		if _, err := v.push.Publish(ctx, created.NotificationType.Label(), created.Message, data); err != nil {
			logging.Warn("notification push failed", logging.Fields{"notification_id": created.ID, "error": err.Error()})
		}
	}

	v.refresh(ctx)
	return created, nil
}

type NotificationsView struct {
	Status        Status             `json:"status"`
	Filter        NotificationFilter `json:"filter"`
	Stats         NotificationStats  `json:"stats"`
	Notifications []NotificationItem `json:"notifications"`
}

func (v *Notifications) View(f NotificationFilter) NotificationsView {
	return NotificationsView{
		Status:        v.status,
		Filter:        f,
		Stats:         v.Stats(),
		Notifications: v.Filter(f),
	}
}
