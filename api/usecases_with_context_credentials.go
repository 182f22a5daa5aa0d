package api

import (
	"context"

	"github.com/NLight-n/ClarityMDT-sub000/usecases"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

func usecasesWithCreds(ctx context.Context, uc usecases.Usecases) *usecases.UsecasesWithCreds {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		panic("no credentials in context")
	}

	return &usecases.UsecasesWithCreds{
		Usecases:    uc,
		Credentials: creds,
	}
}
