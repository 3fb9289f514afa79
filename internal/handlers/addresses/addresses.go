package addresses

import (
	"context"
	"net/http"

	"github.com/mkorchagin/payledger/internal/dto"
	"github.com/mkorchagin/payledger/pkg/utils"
)

type Service interface {
	CountFree(ctx context.Context) (int, error)
}

type AddressesHandler struct {
	addressService Service
}

func New(addressService Service) *AddressesHandler {
	return &AddressesHandler{
		addressService: addressService,
	}
}

// Free godoc
//
//	@Summary		Free address count
//	@Description	Number of deposit addresses not yet assigned to a user.
//	@Tags			Addresses
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.FreeAddressesResponseDTO	"Free address count"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/addresses/free [get]
func (h *AddressesHandler) Free(w http.ResponseWriter, r *http.Request) {
	count, err := h.addressService.CountFree(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FreeAddressesResponseDTO{Free: count})
}
