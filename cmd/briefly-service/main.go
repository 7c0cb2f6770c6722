package main

import (
	"os"

	"github.com/StronkOnes/BrieflyOS/brieflyservice"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := brieflyservice.Run(); err != nil {
		log.Error().Err(err).Msg("briefly-service exited with error")
		os.Exit(1)
	}
}
