package internal

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"strconv"
	"sync"
)

const localOutputEnvVar = "FLOATCHECK_SDK_LOCAL_OUTPUT"
const randomSeedEnvVar = "FLOATCHECK_SDK_SEED"
const errorLogLinePrefix = "[* floatcheck-sdk *]"

// Json_data marshals v and hands the result to the active output handler.
func Json_data(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	handler.output(string(data))
	return nil
}

// Get_random returns the next value from the SDK random source.
func Get_random() uint64 {
	return handler.random()
}

type libHandler interface {
	output(message string)
	random() uint64
}

var handler libHandler

type localHandler struct {
	outputFile *os.File // can be nil
	rngMutex   sync.Mutex
	rng        *rand.Rand // nil means the shared global source
}

func (h *localHandler) output(message string) {
	if h.outputFile != nil {
		h.outputFile.WriteString(message + "\n")
	}
}

func (h *localHandler) random() uint64 {
	if h.rng != nil {
		h.rngMutex.Lock()
		defer h.rngMutex.Unlock()
		return h.rng.Uint64()
	}
	return rand.Uint64()
}

func init() {
	handler = openLocalHandler()
}

// If `localOutputEnvVar` is set to a non-empty path, attempt to open that
// path and truncate the file to serve as the log file of the local
// handler. Otherwise, we don't have a log file, and logging is a no-op.
//
// If `randomSeedEnvVar` parses to a nonzero integer the random source is
// seeded with it so runs are reproducible; a zero or absent seed keeps the
// shared unseeded source.
func openLocalHandler() *localHandler {
	var file *os.File
	if path, isSet := os.LookupEnv(localOutputEnvVar); isSet && len(path) > 0 {
		// Open the file R/W (create if needed and possible)
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
		if err != nil {
			log.Printf("%s Failed to open path %s: %v", errorLogLinePrefix, path, err)
		} else if err = f.Truncate(0); err != nil {
			log.Printf("%s Failed to truncate file at %s: %v", errorLogLinePrefix, path, err)
			f.Close()
		} else {
			file = f
		}
	}

	var rng *rand.Rand
	if seedText, isSet := os.LookupEnv(randomSeedEnvVar); isSet && len(seedText) > 0 {
		seed, err := strconv.ParseInt(seedText, 10, 64)
		if err != nil {
			log.Printf("%s Failed to parse %s %q: %v", errorLogLinePrefix, randomSeedEnvVar, seedText, err)
		} else if seed != 0 {
			rng = rand.New(rand.NewSource(seed))
		}
	}

	return &localHandler{outputFile: file, rng: rng}
}
