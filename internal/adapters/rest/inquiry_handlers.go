package rest

import (
	"net/http"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/contracts"
	"househunt-service/internal/core/domain"
	usecases_port "househunt-service/internal/core/port/usecases_port"
)

type InquiryHandler struct {
	createInquiryUC       usecases_port.CreateInquiryUseCase
	updateInquiryStatusUC usecases_port.UpdateInquiryStatusUseCase
	fetchInquiriesUC      usecases_port.FetchInquiriesUseCase
}

func NewInquiryHandler(
	createInquiryUC usecases_port.CreateInquiryUseCase,
	updateInquiryStatusUC usecases_port.UpdateInquiryStatusUseCase,
	fetchInquiriesUC usecases_port.FetchInquiriesUseCase,
) *InquiryHandler {
	return &InquiryHandler{
		createInquiryUC:       createInquiryUC,
		updateInquiryStatusUC: updateInquiryStatusUC,
		fetchInquiriesUC:      fetchInquiriesUC,
	}
}

type updateInquiryStatusRequest struct {
	Status domain.InquiryStatus `json:"status"`
}

func (h *InquiryHandler) FetchInquiries(w http.ResponseWriter, r *http.Request) {
	identity, _ := contextkeys.IdentityFromContext(r.Context())

	inquiries, err := h.fetchInquiriesUC.Execute(r.Context(), identity)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, inquiries)
}

func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	identity, _ := contextkeys.IdentityFromContext(r.Context())

	var input domain.NewInquiry
	if err := decodeBody(r, contracts.CreateInquiryRequest, &input); err != nil {
		respondError(w, r, err)
		return
	}

	inquiry, err := h.createInquiryUC.Execute(r.Context(), identity, input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	identity, _ := contextkeys.IdentityFromContext(r.Context())
	inquiryID, ok := pathUUID(w, r, "inquiryID")
	if !ok {
		return
	}

	var req updateInquiryStatusRequest
	if err := decodeBody(r, contracts.UpdateInquiryStatusRequest, &req); err != nil {
		respondError(w, r, err)
		return
	}

	inquiry, err := h.updateInquiryStatusUC.Execute(r.Context(), identity, inquiryID, req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, inquiry)
}
