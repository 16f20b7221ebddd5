package patient

import (
	"context"

	"github.com/clinic/clinic/internal/platform/httpapi"
)

// Viewer builds patient representations with the history and the
// consultations embedded.
type Viewer struct {
	history       httpapi.ChildrenFunc
	consultations httpapi.ChildrenFunc
}

func NewViewer(history, consultations httpapi.ChildrenFunc) *Viewer {
	return &Viewer{history: history, consultations: consultations}
}

func (v *Viewer) View(ctx context.Context, p *Patient) (*View, error) {
	view := &View{Patient: p, Consultations: []struct{}{}}
	if v == nil {
		return view, nil
	}
	var err error
	if v.history != nil {
		if view.History, err = v.history(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	if v.consultations != nil {
		if view.Consultations, err = v.consultations(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return view, nil
}

func (v *Viewer) ViewAll(ctx context.Context, items []*Patient) ([]*View, error) {
	out := make([]*View, 0, len(items))
	for _, p := range items {
		view, err := v.View(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}
