package reminder

import "context"

// Acknowledgment is the read receipt for the original order notification.
// One acknowledgment gates every reminder chain of its (order, designer)
// pair. Records are produced by the originating notification flow.
type Acknowledgment struct {
	OrderID    string
	DesignerID string
	IsRead     bool
}

type AcknowledgmentRepository interface {
	GetByOrderAndDesigner(ctx context.Context, orderID string, designerID string) (Acknowledgment, error)
}
