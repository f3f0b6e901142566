// Package config provides configuration loading for pact.
//
// Configuration lives in pact.json, pact.yaml or pact.toml next to the
// program. Load looks for them in that order; LoadFile picks the decoder from
// the file extension.
//
// # Configuration File Structure
//
//	debug: false
//	effects:
//	  isolate: true
//	log:
//	  level: info
//	  format: text
//	metrics:
//	  namespace: pact
//	devtools:
//	  host: localhost
//	  port: 7331
//	snapshots:
//	  dir: ./passes
//	  bucket: my-bucket
//	  prefix: passes/
//	  region: us-east-1
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Devtools:", cfg.DevtoolsAddress())
package config
