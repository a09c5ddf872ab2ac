package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guitarlab/tabcheck/model"
	"github.com/guitarlab/tabcheck/validate"
)

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "listen port")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the validator over HTTP",
	Long:  `Exposes POST /validate so other services can submit (params, tab) pairs for a verdict.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func serve() {
	logger, err := zap.NewProduction()
	cobra.CheckErr(err)
	defer logger.Sync()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/validate", HandleValidate).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")

	handler := cors.Default().Handler(requestLogger(logger, router))
	addr := fmt.Sprintf(":%d", servePort)
	logger.Info("listening", zap.String("addr", addr))
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(addr, handler)))
}

func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// HandleValidate runs the full validation pipeline over a submitted
// (params, tab) pair and answers with the verdict.
func HandleValidate(w http.ResponseWriter, r *http.Request) {
	var in model.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	verdict := validate.Check(in.Params, in.Tab)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(verdict)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
