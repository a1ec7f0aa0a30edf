package request

import (
	"errors"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/usecase"
)

var (
	ErrInvalidDiscountType = errors.New("invalid discount type")
	ErrInvalidClosetType   = errors.New("invalid closet type")
	ErrInvalidMounting     = errors.New("invalid mounting")
)

// ClientRequest replaces the whole client block, the way the form
// submits it.
type ClientRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (r ClientRequest) ToClient() entities.Client {
	return entities.Client{Name: r.Name, Address: r.Address, Phone: r.Phone, Email: r.Email}
}

// SettingsRequest updates quote-level pricing settings. Absent fields
// are left unchanged.
type SettingsRequest struct {
	TaxRate       *float64 `json:"taxRate"`
	DiscountType  *string  `json:"discountType"`
	DiscountValue *float64 `json:"discountValue"`
	Revision      *int     `json:"revision"`
}

func (r SettingsRequest) Resolve() (usecase.QuoteSettings, error) {
	s := usecase.QuoteSettings{
		TaxRate:       r.TaxRate,
		DiscountValue: r.DiscountValue,
		Revision:      r.Revision,
	}
	if r.DiscountType != nil {
		dt := entities.DiscountType(*r.DiscountType)
		if dt != entities.DiscountPercent && dt != entities.DiscountDollar {
			return usecase.QuoteSettings{}, ErrInvalidDiscountType
		}
		s.DiscountType = &dt
	}
	return s, nil
}

// RoomRequest updates the currently selected room. Absent fields are
// left unchanged.
type RoomRequest struct {
	Name          *string  `json:"name"`
	ClosetType    *string  `json:"closetType"`
	LinearFeet    *float64 `json:"linearFeet"`
	Depth         *int     `json:"depth"`
	Height        *float64 `json:"height"`
	Material      *string  `json:"material"`
	PullsHandles  *string  `json:"pullsHandles"`
	HangingRods   *string  `json:"hangingRods"`
	Mounting      *string  `json:"mounting"`
	DrawingNumber *string  `json:"drawingNumber"`
	Notes         *string  `json:"notes"`
}

func (r RoomRequest) Resolve() (usecase.RoomFields, error) {
	f := usecase.RoomFields{
		Name:          r.Name,
		LinearFeet:    r.LinearFeet,
		Depth:         r.Depth,
		Height:        r.Height,
		Material:      r.Material,
		PullsHandles:  r.PullsHandles,
		HangingRods:   r.HangingRods,
		DrawingNumber: r.DrawingNumber,
		Notes:         r.Notes,
	}
	if r.ClosetType != nil {
		ct := entities.ClosetType(*r.ClosetType)
		if ct != entities.ClosetWalkIn && ct != entities.ClosetReachIn {
			return usecase.RoomFields{}, ErrInvalidClosetType
		}
		f.ClosetType = &ct
	}
	if r.Mounting != nil {
		m := entities.Mounting(*r.Mounting)
		if m != entities.MountingFloor && m != entities.MountingWall {
			return usecase.RoomFields{}, ErrInvalidMounting
		}
		f.Mounting = &m
	}
	return f, nil
}

// AddonRequest records one addon selection. Quantity follows the form
// coercion rule: it arrives as a number and defaults to 0 when absent.
type AddonRequest struct {
	Enabled  bool    `json:"enabled"`
	Quantity float64 `json:"quantity"`
}

// CustomItemRequest updates the currently selected custom item.
type CustomItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Notes       *string  `json:"notes"`
}

func (r CustomItemRequest) Resolve() usecase.CustomFields {
	return usecase.CustomFields{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Notes:       r.Notes,
	}
}

// SwitchRequest moves the editing cursor.
type SwitchRequest struct {
	Index *int `json:"index" binding:"required"`
}
