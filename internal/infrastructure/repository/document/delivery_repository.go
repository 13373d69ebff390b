package document

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/delivery"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
)

type DeliveryRepository struct {
	deliveries *docstore.Collection[delivery.Delivery]
}

func NewDeliveryRepository(store docstore.Store) *DeliveryRepository {
	return &DeliveryRepository{
		deliveries: docstore.NewCollection(store, DeliveriesCollection, func(d *delivery.Delivery, id string) { d.ID = id }),
	}
}

func (r *DeliveryRepository) Create(ctx context.Context, d delivery.Delivery) (delivery.Delivery, error) {
	if d.FieldersInvolved == nil {
		d.FieldersInvolved = []string{}
	}
	return r.deliveries.Insert(ctx, d)
}

func (r *DeliveryRepository) ListByInnings(ctx context.Context, inningsID string) ([]delivery.Delivery, error) {
	return r.deliveries.FindMany(ctx, docstore.Query{"innings_id": inningsID})
}

func (r *DeliveryRepository) DeleteByInnings(ctx context.Context, inningsID string) (int64, error) {
	return r.deliveries.DeleteMany(ctx, docstore.Query{"innings_id": inningsID})
}

// DeleteByMatch removes deliveries left behind by an interrupted cascade whose
// innings records are already gone.
func (r *DeliveryRepository) DeleteByMatch(ctx context.Context, matchID string) (int64, error) {
	return r.deliveries.DeleteMany(ctx, docstore.Query{"match_id": matchID})
}
