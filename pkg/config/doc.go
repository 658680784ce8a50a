/*
Copyright 2025 The rulesolver Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config provides configuration management for the solver library.
//
// Configuration Types:
//
//   - Settings: solver tuning (tolerances, branch-and-bound node budget,
//     solve timeout) and the initial log level
//   - Formulation: a declarative description of a model (variables,
//     objective, constraints) loaded from a YAML document
//
// Configuration Sources, in precedence order:
//
//  1. Environment variables (RULESOLVER_* prefix, highest priority)
//  2. An optional YAML settings file
//  3. Default values (lowest priority)
//
// All values are validated at load time: numeric ranges, recognized log
// levels, and, for formulations, variable categories, relational operators
// and right-hand sides. A document that fails validation is rejected as a
// whole; no partially parsed formulation is ever returned.
package config
