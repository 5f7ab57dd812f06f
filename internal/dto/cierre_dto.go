package dto

// ─── Filter / List ──────────────────────────────────────────────────────────

// CierreFilter is bound from query string of GET /v1/cierres.
type CierreFilter struct {
	Desde string `form:"desde"` // YYYY-MM-DD; empty = no lower bound
	Hasta string `form:"hasta"` // YYYY-MM-DD; empty = no upper bound
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CierreListResponse struct {
	Data  []CierreResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type EnviarCierreRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CierreResponse struct {
	ID                    string          `json:"id"`
	TurnoID               string          `json:"turno_id"`
	Operador              string          `json:"operador"`
	InicioEn              string          `json:"inicio_en"`
	FinEn                 string          `json:"fin_en"`
	Totales               TotalesResponse `json:"totales"`
	CantidadTransacciones int             `json:"cantidad_transacciones"`
}
