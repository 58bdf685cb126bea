// Package environment names the deployment environment a process runs in.
//
// The typed string Environment has three predefined values: Development,
// Staging and Production. Parse accepts the canonical names as well as the
// short aliases "dev", "stage" and "prod", falling back to Development for
// anything it does not recognise.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // production-only wiring
//	}
package environment
