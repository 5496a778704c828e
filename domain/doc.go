// Package domain contains the core business entities, value objects, and
// domain logic for cannabis-infused food service: lab certificates,
// ingredients, recipes, menus, and compliance records. It represents the
// heart of the system, independent of any specific infrastructure or
// delivery mechanism.
package domain
